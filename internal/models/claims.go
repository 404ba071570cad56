package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Shop permissions
	PermissionShopRead  = "shop:read"
	PermissionShopWrite = "shop:write"

	// Payment permissions
	PermissionPaymentRead  = "payment:read"
	PermissionPaymentWrite = "payment:write"

	// Permit permissions
	PermissionPermitRead  = "permit:read"
	PermissionPermitWrite = "permit:write"

	// Revenue type permissions
	PermissionRevenueRead  = "revenue:read"
	PermissionRevenueWrite = "revenue:write"

	// Reporting permissions
	PermissionReportRead = "report:read"

	// Account permissions
	PermissionChangePassword = "user:change-password"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionShopRead,
			PermissionShopWrite,
			PermissionPaymentRead,
			PermissionPaymentWrite,
			PermissionPermitRead,
			PermissionPermitWrite,
			PermissionRevenueRead,
			PermissionRevenueWrite,
			PermissionReportRead,
			PermissionChangePassword,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case RoleOfficer:
		return []string{
			PermissionShopRead,
			PermissionShopWrite,
			PermissionPaymentRead,
			PermissionPaymentWrite,
			PermissionPermitRead,
			PermissionPermitWrite,
			PermissionRevenueRead,
			PermissionReportRead,
			PermissionChangePassword,
		}
	default:
		return []string{}
	}
}
