// README: Vehicle aggregate.
package vehicle

import (
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type Vehicle struct {
	ID        types.ID
	Model     string
	Plate     string
	PhotoURL  *string
	Active    bool
	CreatedAt time.Time
}
