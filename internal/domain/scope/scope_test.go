package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type fakeSedes map[string]string

func (f fakeSedes) FranquiciaOf(_ context.Context, sedeID string) (string, error) {
	franq, ok := f[sedeID]
	if !ok {
		return "", httperr.ErrNotFound("sede_not_found", "sede")
	}
	return franq, nil
}

var sedes = fakeSedes{
	"A": "F1",
	"B": "F1",
	"C": "F2",
	"D": "",
}

func TestParseRoleNormalizesSpellings(t *testing.T) {
	cases := map[string]Role{
		"super_admin":      RoleSuperAdmin,
		"superadmin":       RoleSuperAdmin,
		"Super-Admin":      RoleSuperAdmin,
		"admin_franquicia": RoleAdminFranquicia,
		"adminsede":        RoleAdminSede,
		" ADMIN_SEDE ":     RoleAdminSede,
		"recepcionista":    RoleRecepcionista,
		"estilista":        RoleEstilista,
	}
	for raw, want := range cases {
		got, ok := ParseRole(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := ParseRole("owner")
	assert.False(t, ok)
}

func TestForSuperAdmin(t *testing.T) {
	id := Identity{Role: RoleSuperAdmin}

	f, err := For(context.Background(), id, "", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{All: true}, f)

	f, err = For(context.Background(), id, "C", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{SedeID: "C"}, f)
}

func TestForAdminFranquicia(t *testing.T) {
	id := Identity{Role: RoleAdminFranquicia, FranquiciaID: "F1"}

	f, err := For(context.Background(), id, "", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{FranquiciaID: "F1"}, f)

	f, err = For(context.Background(), id, "B", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{SedeID: "B"}, f)

	_, err = For(context.Background(), id, "C", sedes)
	assert.Equal(t, httperr.KindPermission, httperr.KindOf(err))

	_, err = For(context.Background(), id, "missing", sedes)
	assert.Equal(t, httperr.KindPermission, httperr.KindOf(err))

	_, err = For(context.Background(), Identity{Role: RoleAdminFranquicia}, "", sedes)
	assert.Equal(t, httperr.KindConfiguration, httperr.KindOf(err))
}

func TestForAdminSede(t *testing.T) {
	id := Identity{Role: RoleAdminSede, SedeID: "A"}

	_, err := For(context.Background(), id, "B", sedes)
	assert.Equal(t, httperr.KindPermission, httperr.KindOf(err))

	f, err := For(context.Background(), id, "A", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{SedeID: "A"}, f)

	f, err = For(context.Background(), id, "", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{SedeID: "A"}, f)

	_, err = For(context.Background(), Identity{Role: RoleAdminSede}, "", sedes)
	assert.Equal(t, httperr.KindConfiguration, httperr.KindOf(err))
}

func TestForRejectsStaffRoles(t *testing.T) {
	for _, r := range []Role{RoleRecepcionista, RoleEstilista, Role("")} {
		_, err := For(context.Background(), Identity{Role: r, SedeID: "A"}, "", sedes)
		assert.Equal(t, httperr.KindPermission, httperr.KindOf(err), r)
	}
}

func TestForOperationsPinsStaffToTheirSede(t *testing.T) {
	id := Identity{Role: RoleRecepcionista, SedeID: "A"}

	f, err := ForOperations(context.Background(), id, "", sedes)
	require.NoError(t, err)
	assert.Equal(t, Filter{SedeID: "A"}, f)

	_, err = ForOperations(context.Background(), id, "B", sedes)
	assert.Equal(t, httperr.KindPermission, httperr.KindOf(err))

	_, err = ForOperations(context.Background(), Identity{Role: RoleEstilista}, "", sedes)
	assert.Equal(t, httperr.KindConfiguration, httperr.KindOf(err))

	f, err = ForOperations(context.Background(), Identity{Role: RoleSuperAdmin}, "", sedes)
	require.NoError(t, err)
	assert.True(t, f.All)
}

func TestFilterCovers(t *testing.T) {
	assert.True(t, Filter{All: true}.Covers("X", ""))
	assert.True(t, Filter{SedeID: "A"}.Covers("A", "F1"))
	assert.False(t, Filter{SedeID: "A"}.Covers("B", "F1"))
	assert.True(t, Filter{FranquiciaID: "F1"}.Covers("B", "F1"))
	assert.False(t, Filter{FranquiciaID: "F1"}.Covers("D", ""))
	assert.False(t, Filter{}.Covers("A", "F1"))
}
