// README: Account aggregate.
package account

import (
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Account struct {
	ID           types.ID
	Registration string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
