package queries_test

import (
	"testing"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCompatibleVehiclesQueryHandler(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin@logisoft.test", user.RoleAdmin, nil)
	alice := seedUser(t, db, "alice@acme.test", user.RoleShipper, nil)
	bob := seedUser(t, db, "bob@acme.test", user.RoleShipper, nil)

	north := seedZone(t, db, "north", 10, 20)
	northID := north.ID()
	small := seedVehicle(t, db, "SMALL", 50, 0.5, &northID)
	big := seedVehicle(t, db, "BIG", 1000, 10, &northID)
	bigger := seedVehicle(t, db, "BIGGER", 2000, 20, &northID)
	seedVehicle(t, db, "ELSEWHERE", 2000, 20, nil)

	inZone := seedOrder(t, db, alice.ID(), "books", 15, 15, nil)
	outside := seedOrder(t, db, alice.ID(), "lamps", 50, 50, nil)

	handler := queries.NewGetCompatibleVehiclesQueryHandler(
		postgres.NewGormUnitOfWorkFactory(db),
		queries.NewListVehiclesQueryHandler(db),
	)

	t.Run("every_fit_in_registry_order", func(t *testing.T) {
		// Given
		query, err := queries.NewGetCompatibleVehiclesQuery(actorOf(alice), inZone.ID())
		require.NoError(t, err)

		// When
		result, err := handler.Handle(t.Context(), query)

		// Then
		require.NoError(t, err)
		require.NotNil(t, result.Zone)
		assert.Equal(t, "north", result.Zone.Name)
		require.Len(t, result.Vehicles, 2)
		assert.Equal(t, big.ID(), result.Vehicles[0].ID)
		assert.Equal(t, bigger.ID(), result.Vehicles[1].ID)
		for _, v := range result.Vehicles {
			assert.NotEqual(t, small.ID(), v.ID)
		}
	})

	t.Run("admin_reads_any_order", func(t *testing.T) {
		query, err := queries.NewGetCompatibleVehiclesQuery(actorOf(admin), inZone.ID())
		require.NoError(t, err)

		result, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Len(t, result.Vehicles, 2)
	})

	t.Run("outside_every_zone", func(t *testing.T) {
		query, err := queries.NewGetCompatibleVehiclesQuery(actorOf(alice), outside.ID())
		require.NoError(t, err)

		result, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Nil(t, result.Zone)
		assert.Empty(t, result.Vehicles)
	})

	t.Run("other_shipper_is_forbidden", func(t *testing.T) {
		query, err := queries.NewGetCompatibleVehiclesQuery(actorOf(bob), inZone.ID())
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown_order", func(t *testing.T) {
		query, err := queries.NewGetCompatibleVehiclesQuery(actorOf(alice), kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not_constructed", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.GetCompatibleVehiclesQuery{})

		require.ErrorIs(t, err, queries.ErrGetCompatibleVehiclesQueryIsNotConstructed)
	})
}
