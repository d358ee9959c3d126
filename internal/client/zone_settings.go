package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// ZoneSettingsClient implements cfapi.ZoneSettingsClient. Setting values are
// open enums; the server introduces values clients do not know.
type ZoneSettingsClient struct {
	httpClient *internalhttp.Client
}

// List returns all settings on a zone.
func (c *ZoneSettingsClient) List(ctx context.Context, zoneID string) ([]cfapi.ZoneSetting, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID, "settings"), "")
	if err != nil {
		return nil, err
	}

	settings, _, err := cfapi.DecodeList[cfapi.ZoneSetting](resp.Body)

	return settings, err
}

// Get returns a single zone setting.
func (c *ZoneSettingsClient) Get(ctx context.Context, zoneID, settingID string) (*cfapi.ZoneSetting, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	if err := requireParam("settingID", settingID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID, "settings", settingID), "")
	if err != nil {
		return nil, err
	}

	setting, err := cfapi.DecodeResult[cfapi.ZoneSetting](resp.Body)
	if err != nil {
		return nil, err
	}

	return &setting, nil
}

// Update changes a setting's value.
func (c *ZoneSettingsClient) Update(ctx context.Context, zoneID, settingID string, request *cfapi.ZoneSettingUpdateRequest) (*cfapi.ZoneSetting, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	if err := requireParam("settingID", settingID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, cfapi.BuildPath("zones", zoneID, "settings", settingID), request)
	if err != nil {
		return nil, err
	}

	setting, err := cfapi.DecodeResult[cfapi.ZoneSetting](resp.Body)
	if err != nil {
		return nil, err
	}

	return &setting, nil
}
