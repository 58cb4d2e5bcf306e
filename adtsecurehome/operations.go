package adtsecurehome

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// authParams returns a fresh parameter set carrying the standard fields and
// the current session token.
func (c *Client) authParams() url.Values {
	params := baseParams()
	params.Set("token", c.token)
	return params
}

// Login authenticates with the configured credentials and stores the issued
// session token on the client for subsequent calls.
func (c *Client) Login(ctx context.Context) (APIResponse, error) {
	params := baseParams()
	params.Set("email", c.email)
	params.Set("password", c.password)

	result, err := c.do(ctx, request{
		op:     "login",
		method: http.MethodGet,
		path:   endpointLogin,
		params: params,
	})
	if err != nil {
		return nil, err
	}

	token := result.Token()
	if token == "" {
		return nil, &APIError{Op: "login", Message: "response missing token", Payload: result}
	}
	c.token = token

	return result, nil
}

// CheckAppVersion asks the vendor whether this client version is current.
func (c *Client) CheckAppVersion(ctx context.Context) (APIResponse, error) {
	params := c.authParams()
	params.Set("clientImei", stdParams["imei"])

	return c.do(ctx, request{
		op:     "check app version",
		method: http.MethodGet,
		path:   endpointCheckAppVersion,
		params: params,
	})
}

// SiteNotifications returns the recent notification feed for the account's
// sites.
func (c *Client) SiteNotifications(ctx context.Context) (APIResponse, error) {
	return c.do(ctx, request{
		op:     "site notifications",
		method: http.MethodGet,
		path:   endpointSiteNotifications,
		params: c.authParams(),
	})
}

// GetSyncInfo returns the account's sites and their partitions.
func (c *Client) GetSyncInfo(ctx context.Context) (APIResponse, error) {
	return c.do(ctx, request{
		op:     "sync info",
		method: http.MethodGet,
		path:   endpointSyncInfo,
		params: c.authParams(),
	})
}

// GetStateInfo returns the current alarm state of the account's sites.
func (c *Client) GetStateInfo(ctx context.Context) (APIResponse, error) {
	return c.do(ctx, request{
		op:     "state info",
		method: http.MethodGet,
		path:   endpointStateInfo,
		params: c.authParams(),
	})
}

// GetNotificationSubscriptions returns the notification categories the
// account is subscribed to.
func (c *Client) GetNotificationSubscriptions(ctx context.Context) (APIResponse, error) {
	return c.do(ctx, request{
		op:     "notification subscriptions",
		method: http.MethodGet,
		path:   endpointNotificationSubscriptions,
		params: c.authParams(),
	})
}

// GetUserPreferences returns the stored user preferences.
func (c *Client) GetUserPreferences(ctx context.Context) (APIResponse, error) {
	return c.do(ctx, request{
		op:     "user preferences",
		method: http.MethodGet,
		path:   endpointGetUserPreferences,
		params: c.authParams(),
	})
}

// GetSecurityCompanies lists the security companies on the vendor platform.
func (c *Client) GetSecurityCompanies(ctx context.Context) (APIResponse, error) {
	return c.do(ctx, request{
		op:     "security companies",
		method: http.MethodGet,
		path:   endpointSecurityCompanies,
		params: c.authParams(),
	})
}

// StoreGCMRegistrationID registers a device push token so the vendor can
// route push notifications to this device.
func (c *Client) StoreGCMRegistrationID(ctx context.Context, gcmID string) (APIResponse, error) {
	params := c.authParams()
	params.Set("gcmId", gcmID)

	return c.do(ctx, request{
		op:     "store GCM registration id",
		method: http.MethodPost,
		path:   endpointStoreGCMRegistrationID,
		params: params,
	})
}

// SetUserPreference stores the code the vendor app keeps per partition,
// either the arming code or the bypass code. The selection is validated
// locally; no request is made when it is invalid.
func (c *Client) SetUserPreference(ctx context.Context, siteID, partitionID string, newCode int, storeFor StoreFor) (APIResponse, error) {
	if !storeFor.valid() {
		return nil, &APIError{Op: "set user preference", Message: "invalid selection, choose between Arm or Bypass"}
	}

	params := c.authParams()
	params.Set("siteId", siteID)
	params.Set("name", "site."+siteID+".partition."+partitionID+".storeFor"+string(storeFor))
	params.Set("preference_value", strconv.Itoa(newCode))

	return c.do(ctx, request{
		op:     "set user preference",
		method: http.MethodPost,
		path:   endpointSetUserPreference,
		params: params,
	})
}

// ArmSite arms (arm true) or disarms (arm false) a partition using the
// user's alarm PIN.
func (c *Client) ArmSite(ctx context.Context, arm bool, pin int, partitionID, siteID string) (APIResponse, error) {
	params := c.authParams()
	params.Set("arm", strconv.FormatBool(arm))
	params.Set("pin", strconv.Itoa(pin))
	params.Set("partitionId", partitionID)
	params.Set("siteId", siteID)

	return c.do(ctx, request{
		op:     "arm site",
		method: http.MethodGet,
		path:   endpointArmSite,
		params: params,
	})
}
