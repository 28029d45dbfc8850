// README: DB-backed booking lifecycle tests (skipped unless LEOPARDO_TEST_DSN is set).
package booking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Castanheira1/leopardo-api/internal/db"
	"github.com/Castanheira1/leopardo-api/internal/modules/vehicle"
	"github.com/Castanheira1/leopardo-api/internal/types"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("LEOPARDO_TEST_DSN")
	if dsn == "" {
		t.Skip("LEOPARDO_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	if err := db.MigrateUp(ctx, dsn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, "TRUNCATE TABLE trips, vehicles, accounts"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

func seedAccount(t *testing.T, pool *pgxpool.Pool, registration string) types.ID {
	t.Helper()
	id := types.NewID()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO accounts (id, registration, password_hash, is_admin)
		VALUES ($1, $2, 'x', FALSE)`, string(id), registration)
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return id
}

func seedVehicle(t *testing.T, pool *pgxpool.Pool, model, plate string, active bool) types.ID {
	t.Helper()
	id := types.NewID()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO vehicles (id, model, plate, active)
		VALUES ($1, $2, $3, $4)`, string(id), model, plate, active)
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return id
}

func backdateTrip(t *testing.T, pool *pgxpool.Pool, tripID types.ID, age time.Duration) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		UPDATE trips SET created_at = NOW() - $1::interval WHERE id = $2`,
		fmt.Sprintf("%d seconds", int(age.Seconds())), string(tripID))
	if err != nil {
		t.Fatalf("backdate trip: %v", err)
	}
}

func TestTripLifecycleHappyPath(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewService(NewStore(pool))
	vehicles := vehicle.NewService(vehicle.NewStore(pool), nil)
	ctx := context.Background()

	accountID := seedAccount(t, pool, "10001")
	vehicleID := seedVehicle(t, pool, "Sedan", "ABC-123", true)

	trip, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: vehicleID, Reason: "client visit"})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if trip.Status != StatusRequested {
		t.Fatalf("status = %s, want %s", trip.Status, StatusRequested)
	}

	started, err := svc.Start(ctx, trip.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Status != StatusActive || started.StartedAt == nil {
		t.Fatalf("start did not stamp active state: %+v", started)
	}

	stopped, err := svc.Stop(ctx, trip.ID)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stopped.Status != StatusCompleted || stopped.EndedAt == nil {
		t.Fatalf("stop did not stamp completed state: %+v", stopped)
	}
	if stopped.DurationDays == nil || stopped.DurationHours == nil {
		t.Fatal("duration fields not populated on completion")
	}

	available, err := vehicles.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if !containsVehicle(available, vehicleID) {
		t.Fatal("vehicle not available again after completion")
	}
}

func TestRequestValidation(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()

	accountID := seedAccount(t, pool, "10002")
	vehicleID := seedVehicle(t, pool, "Van", "VAN-001", true)
	inactiveID := seedVehicle(t, pool, "Truck", "TRK-001", false)

	if _, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: vehicleID}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("empty reason: got %v, want ErrBadRequest", err)
	}
	if _, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: types.NewID(), Reason: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing vehicle: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: inactiveID, Reason: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive vehicle: got %v, want ErrNotFound", err)
	}
}

func TestRequestClaimedVehicleConflicts(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()

	a := seedAccount(t, pool, "10003")
	b := seedAccount(t, pool, "10004")
	vehicleID := seedVehicle(t, pool, "Sedan", "SED-002", true)

	trip, err := svc.Request(ctx, RequestCommand{AccountID: a, VehicleID: vehicleID, Reason: "delivery"})
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	if _, err := svc.Request(ctx, RequestCommand{AccountID: b, VehicleID: vehicleID, Reason: "errand"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("second request: got %v, want ErrConflict", err)
	}

	// still claimed once active
	if _, err := svc.Start(ctx, trip.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Request(ctx, RequestCommand{AccountID: b, VehicleID: vehicleID, Reason: "errand"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("request against active trip: got %v, want ErrConflict", err)
	}
}

func TestTransitionIdempotence(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()

	accountID := seedAccount(t, pool, "10005")
	vehicleID := seedVehicle(t, pool, "Sedan", "SED-003", true)

	trip, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: vehicleID, Reason: "visit"})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := svc.Start(ctx, trip.ID); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := svc.Start(ctx, trip.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second start: got %v, want ErrNotFound", err)
	}

	if _, err := svc.Stop(ctx, trip.ID); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if _, err := svc.Stop(ctx, trip.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second stop: got %v, want ErrNotFound", err)
	}

	// terminal: no transition out of completed
	if _, err := svc.Start(ctx, trip.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("start after completion: got %v, want ErrNotFound", err)
	}
}

func TestExpirePending(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()

	accountID := seedAccount(t, pool, "10006")
	oldVehicle := seedVehicle(t, pool, "Sedan", "OLD-001", true)
	youngVehicle := seedVehicle(t, pool, "Sedan", "NEW-001", true)

	oldTrip, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: oldVehicle, Reason: "stale"})
	if err != nil {
		t.Fatalf("request old: %v", err)
	}
	backdateTrip(t, pool, oldTrip.ID, time.Hour)

	youngTrip, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: youngVehicle, Reason: "fresh"})
	if err != nil {
		t.Fatalf("request young: %v", err)
	}

	n, err := svc.ExpirePending(ctx, 30*time.Minute)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 1 {
		t.Fatalf("expired %d trips, want 1", n)
	}

	assertStatus(t, svc, oldTrip.ID, StatusExpired)
	assertStatus(t, svc, youngTrip.ID, StatusRequested)

	// re-sweeping is a no-op for already-expired trips
	n, err = svc.ExpirePending(ctx, 30*time.Minute)
	if err != nil {
		t.Fatalf("re-sweep: %v", err)
	}
	if n != 0 {
		t.Fatalf("re-sweep expired %d trips, want 0", n)
	}

	// an expired request frees the vehicle
	if _, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: oldVehicle, Reason: "retry"}); err != nil {
		t.Fatalf("request after expiry: %v", err)
	}
}

func TestAvailabilityExcludesOpenTrips(t *testing.T) {
	pool := setupTestDB(t)
	svc := NewService(NewStore(pool))
	vehicles := vehicle.NewService(vehicle.NewStore(pool), nil)
	ctx := context.Background()

	accountID := seedAccount(t, pool, "10007")
	free := seedVehicle(t, pool, "Sedan", "FREE-01", true)
	claimed := seedVehicle(t, pool, "Sedan", "BUSY-01", true)
	inactive := seedVehicle(t, pool, "Sedan", "DOWN-01", false)

	if _, err := svc.Request(ctx, RequestCommand{AccountID: accountID, VehicleID: claimed, Reason: "run"}); err != nil {
		t.Fatalf("request: %v", err)
	}

	available, err := vehicles.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if !containsVehicle(available, free) {
		t.Error("active vehicle with no trips missing from availability")
	}
	if containsVehicle(available, claimed) {
		t.Error("vehicle with open trip listed as available")
	}
	if containsVehicle(available, inactive) {
		t.Error("inactive vehicle listed as available")
	}
}

func assertStatus(t *testing.T, svc *Service, id types.ID, want Status) {
	t.Helper()
	trip, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get trip: %v", err)
	}
	if trip.Status != want {
		t.Fatalf("status = %s, want %s", trip.Status, want)
	}
}

func containsVehicle(list []vehicle.Vehicle, id types.ID) bool {
	for _, v := range list {
		if v.ID == id {
			return true
		}
	}
	return false
}
