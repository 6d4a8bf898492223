package scope

import "strings"

type Role string

const (
	RoleSuperAdmin      Role = "super_admin"
	RoleAdminFranquicia Role = "admin_franquicia"
	RoleAdminSede       Role = "admin_sede"
	RoleRecepcionista   Role = "recepcionista"
	RoleEstilista       Role = "estilista"
)

var roleAliases = map[string]Role{
	"superadmin":      RoleSuperAdmin,
	"adminfranquicia": RoleAdminFranquicia,
	"adminsede":       RoleAdminSede,
	"recepcionista":   RoleRecepcionista,
	"recepcion":       RoleRecepcionista,
	"estilista":       RoleEstilista,
}

// ParseRole maps the spellings found in issued tokens ("superadmin",
// "Super-Admin", "admin_sede", "adminsede"...) to the canonical role.
// It is only called where identities are built from a credential.
func ParseRole(raw string) (Role, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	r, ok := roleAliases[key]
	return r, ok
}

func (r Role) IsAdmin() bool {
	switch r {
	case RoleSuperAdmin, RoleAdminFranquicia, RoleAdminSede:
		return true
	}
	return false
}

// Identity is the caller built from a validated credential. It lives for a
// single request.
type Identity struct {
	UserID       string
	Role         Role
	SedeID       string
	FranquiciaID string
	Email        string
	Username     string
}
