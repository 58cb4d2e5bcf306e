package adtsecurehome

import (
	"net/url"
	"time"
)

// DefaultBaseURL is the production endpoint of the ADT Secure Home cloud.
// The trailing slash is part of the URL the mobile clients emit (paths below
// carry their own leading slash, so produced URLs contain a doubled slash,
// which the vendor's routing accepts and expects).
const DefaultBaseURL = "https://ids.trintel.co.za/Inhep-Impl-1.0-SNAPSHOT/"

// DefaultTimeout bounds every request round trip.
const DefaultTimeout = 25 * time.Second

// defaultUserAgent mirrors the Android client the vendor API is served to.
const defaultUserAgent = "okhttp/3.12.1"

// API endpoint paths. These are the vendor's literal paths and must not be
// normalized or re-joined; compatibility depends on the exact bytes.
const (
	endpointLogin                     = "/auth/login"
	endpointCheckAppVersion           = "/auth/checkAppVersion"
	endpointSiteNotifications         = "/device/getSiteNotifications"
	endpointSyncInfo                  = "/device/getSyncInfo"
	endpointStateInfo                 = "/device/getStateInfo"
	endpointNotificationSubscriptions = "/device/getNotificationSubscriptions"
	endpointGetUserPreferences        = "/user/getUserPreferences"
	endpointSetUserPreference         = "/user/setUserPreference"
	endpointSecurityCompanies         = "/security-companies/list"
	endpointStoreGCMRegistrationID    = "/user/storeGcmRegistrationId"
	endpointArmSite                   = "/device/armSite"
)

// stdParams is the read-only template of client/protocol identifiers sent on
// every call. It is copied per request by baseParams and never mutated in
// place; sharing one mutable map across calls leaks per-call parameters into
// later requests.
var stdParams = map[string]string{
	"imei":           "3518781954674321",
	"appVersionCode": "434",
	"deviceOS":       "10",
	"deviceName":     "Go API",
	"pkg":            "za.co.adt.securehome.android",
}

// baseParams returns a fresh parameter set derived from the standard
// template. Every request starts from its own copy.
func baseParams() url.Values {
	params := make(url.Values, len(stdParams)+6)
	for k, v := range stdParams {
		params.Set(k, v)
	}
	return params
}
