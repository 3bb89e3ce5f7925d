package amazonads

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/apify/airbyte/protocol"
	"github.com/apify/airbyte/source"
	"github.com/apify/airbyte/utils"
)

// account types of the Advertising API profile resource
const (
	accountTypeVendor = "vendor"
	accountTypeSeller = "seller"
)

// profilesStream reads v2/profiles. Records flow through the shared context
// so dependent streams reuse the same extraction instead of re-requesting.
type profilesStream struct {
	shared *source.SharedContext
}

func newProfilesStream(shared *source.SharedContext) *profilesStream {
	return &profilesStream{shared: shared}
}

func (p *profilesStream) Name() string { return "profiles" }

func (p *profilesStream) JSONSchema() protocol.Properties { return profileSchema }

func (p *profilesStream) PrimaryKey() [][]string { return [][]string{{"profileId"}} }

func (p *profilesStream) ReadRecords(ctx context.Context, _ protocol.SyncMode) (source.RecordIterator, error) {
	records, err := p.shared.Parents(ctx)
	if err != nil {
		return nil, err
	}
	return source.NewSliceIterator(records), nil
}

// displayStream is a sponsored-display resource scoped to vendor profiles:
// one paginated sub-extraction per cached vendor profile.
type displayStream struct {
	name       string
	path       string
	primaryKey string
	schema     protocol.Properties

	client   *Client
	shared   *source.SharedContext
	filter   source.ParentFilter
	pageSize int
}

func (d *displayStream) Name() string { return d.name }

func (d *displayStream) JSONSchema() protocol.Properties { return d.schema }

func (d *displayStream) PrimaryKey() [][]string { return [][]string{{d.primaryKey}} }

func (d *displayStream) ReadRecords(ctx context.Context, _ protocol.SyncMode) (source.RecordIterator, error) {
	return source.NewDependentIterator(ctx, d.shared, d.filter, d.readProfileRecords), nil
}

func (d *displayStream) readProfileRecords(ctx context.Context, profile source.Record) (source.RecordIterator, error) {
	scope := fmt.Sprint(profile["profileId"])
	walker := source.PageWalker{
		PageSize: d.pageSize,
		Fetch: func(ctx context.Context, offset, count int) ([]source.Record, error) {
			query := url.Values{
				"startIndex": []string{strconv.Itoa(offset)},
				"count":      []string{strconv.Itoa(count)},
			}
			return d.client.GetRecords(ctx, d.path, scope, query)
		},
	}
	return walker.Records(ctx)
}

func isVendorProfile(profile source.Record) bool {
	accountType, _ := utils.MapValue(profile, "accountInfo", "type").(string)
	return accountType == accountTypeVendor
}

// profileFilter restricts dependent streams to vendor profiles, additionally
// narrowed to the configured profile_ids when any are set. The profiles
// stream itself always lists every accessible profile.
func profileFilter(cfg *Config) source.ParentFilter {
	if len(cfg.ProfileIDs) == 0 {
		return isVendorProfile
	}
	requested := make(map[string]bool, len(cfg.ProfileIDs))
	for _, id := range cfg.ProfileIDs {
		requested[id] = true
	}
	return func(profile source.Record) bool {
		return isVendorProfile(profile) && requested[fmt.Sprint(profile["profileId"])]
	}
}

// buildStreams constructs all streams for one configuration in their
// declared order.
func buildStreams(cfg *Config, client *Client) []source.Stream {
	shared := source.NewSharedContext(func(ctx context.Context) ([]source.Record, error) {
		return client.GetRecords(ctx, "v2/profiles", "", nil)
	})

	filter := profileFilter(cfg)
	display := func(name, path, primaryKey string, schema protocol.Properties) source.Stream {
		return &displayStream{
			name:       name,
			path:       path,
			primaryKey: primaryKey,
			schema:     schema,
			client:     client,
			shared:     shared,
			filter:     filter,
			pageSize:   cfg.PageSize,
		}
	}

	return []source.Stream{
		newProfilesStream(shared),
		display("sponsored_display_campaigns", "sd/campaigns", "campaignId", campaignSchema),
		display("sponsored_display_ad_groups", "sd/adGroups", "adGroupId", adGroupSchema),
		display("sponsored_display_product_ads", "sd/productAds", "adId", productAdSchema),
		display("sponsored_display_targetings", "sd/targets", "targetId", targetingSchema),
		display("sponsored_display_creatives", "sd/creatives", "creativeId", creativeSchema),
	}
}
