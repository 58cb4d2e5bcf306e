package adtsecurehome

import (
	"context"
)

// API defines the operations the Secure Home client exposes. *Client is the
// canonical implementation; the interface exists so callers can substitute
// fakes in tests.
type API interface {
	// Login authenticates and stores the issued session token
	Login(ctx context.Context) (APIResponse, error)

	// CheckAppVersion asks the vendor whether this client version is current
	CheckAppVersion(ctx context.Context) (APIResponse, error)

	// SiteNotifications returns the recent notification feed
	SiteNotifications(ctx context.Context) (APIResponse, error)

	// GetSyncInfo returns the account's sites and partitions
	GetSyncInfo(ctx context.Context) (APIResponse, error)

	// GetStateInfo returns the current alarm state
	GetStateInfo(ctx context.Context) (APIResponse, error)

	// GetNotificationSubscriptions returns the subscribed notification categories
	GetNotificationSubscriptions(ctx context.Context) (APIResponse, error)

	// GetUserPreferences returns the stored user preferences
	GetUserPreferences(ctx context.Context) (APIResponse, error)

	// GetSecurityCompanies lists the security companies on the platform
	GetSecurityCompanies(ctx context.Context) (APIResponse, error)

	// StoreGCMRegistrationID registers a device push token
	StoreGCMRegistrationID(ctx context.Context, gcmID string) (APIResponse, error)

	// SetUserPreference stores a per-partition arming or bypass code
	SetUserPreference(ctx context.Context, siteID, partitionID string, newCode int, storeFor StoreFor) (APIResponse, error)

	// ArmSite arms or disarms a partition
	ArmSite(ctx context.Context, arm bool, pin int, partitionID, siteID string) (APIResponse, error)
}
