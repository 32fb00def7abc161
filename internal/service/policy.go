package service

import (
	"github.com/DvEyZ/rkblog-be/models"
)

// CapabilityPolicy is a predicate over a verified claim set deciding whether
// a request may proceed past the authorization guard. Each protected endpoint
// binds exactly one policy; the guard evaluates it after the token's
// signature and expiry have been checked.
type CapabilityPolicy func(claims models.AccessClaims) bool

// AnyAuthenticated admits every valid, unexpired token regardless of
// permission level.
var AnyAuthenticated CapabilityPolicy = func(models.AccessClaims) bool {
	return true
}

// RequireAdmin admits only tokens whose permission level is Admin.
var RequireAdmin CapabilityPolicy = func(claims models.AccessClaims) bool {
	return claims.Permissions == models.PermissionAdmin
}

// CanMutate is the owner-or-admin rule applied to mutating operations on an
// owned resource: the caller may proceed iff the resource's recorded owner
// name equals the caller's claimed name, or the caller is an administrator.
//
// Pure decision function; resolution of ownerName from the stored owner
// reference happens before this is called.
func CanMutate(ownerName string, caller models.AccessClaims) bool {
	return ownerName == caller.Name || caller.Permissions == models.PermissionAdmin
}
