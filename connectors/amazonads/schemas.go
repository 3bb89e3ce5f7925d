package amazonads

import "github.com/apify/airbyte/protocol"

func prop(t protocol.PropType) protocol.PropertySpec {
	return protocol.PropertySpec{PropertyType: protocol.PropertyType{Type: t}}
}

var profileSchema = protocol.Properties{
	Properties: map[protocol.PropertyName]protocol.PropertySpec{
		"profileId":    prop(protocol.TypeInteger),
		"countryCode":  prop(protocol.TypeString),
		"currencyCode": prop(protocol.TypeString),
		"dailyBudget":  prop(protocol.TypeNumber),
		"timezone":     prop(protocol.TypeString),
		"accountInfo": {
			PropertyType: protocol.PropertyType{Type: protocol.TypeObject},
			Properties: map[protocol.PropertyName]protocol.PropertySpec{
				"marketplaceStringId": prop(protocol.TypeString),
				"id":                  prop(protocol.TypeString),
				"type":                prop(protocol.TypeString),
				"subType":             prop(protocol.TypeString),
				"validPaymentMethod":  prop(protocol.TypeBoolean),
			},
		},
	},
}

var campaignSchema = protocol.Properties{
	Properties: map[protocol.PropertyName]protocol.PropertySpec{
		"campaignId":      prop(protocol.TypeInteger),
		"name":            prop(protocol.TypeString),
		"tactic":          prop(protocol.TypeString),
		"startDate":       prop(protocol.TypeString),
		"endDate":         prop(protocol.TypeString),
		"state":           prop(protocol.TypeString),
		"costType":        prop(protocol.TypeString),
		"budget":          prop(protocol.TypeNumber),
		"budgetType":      prop(protocol.TypeString),
		"deliveryProfile": prop(protocol.TypeString),
	},
}

var adGroupSchema = protocol.Properties{
	Properties: map[protocol.PropertyName]protocol.PropertySpec{
		"adGroupId":       prop(protocol.TypeInteger),
		"campaignId":      prop(protocol.TypeInteger),
		"name":            prop(protocol.TypeString),
		"defaultBid":      prop(protocol.TypeNumber),
		"bidOptimization": prop(protocol.TypeString),
		"state":           prop(protocol.TypeString),
		"tactic":          prop(protocol.TypeString),
		"creativeType":    prop(protocol.TypeString),
	},
}

var productAdSchema = protocol.Properties{
	Properties: map[protocol.PropertyName]protocol.PropertySpec{
		"adId":       prop(protocol.TypeInteger),
		"campaignId": prop(protocol.TypeInteger),
		"adGroupId":  prop(protocol.TypeInteger),
		"sku":        prop(protocol.TypeString),
		"asin":       prop(protocol.TypeString),
		"state":      prop(protocol.TypeString),
	},
}

var targetingSchema = protocol.Properties{
	Properties: map[protocol.PropertyName]protocol.PropertySpec{
		"targetId":           prop(protocol.TypeInteger),
		"adGroupId":          prop(protocol.TypeInteger),
		"state":              prop(protocol.TypeString),
		"expressionType":     prop(protocol.TypeString),
		"bid":                prop(protocol.TypeNumber),
		"expression":         prop(protocol.TypeArray),
		"resolvedExpression": prop(protocol.TypeArray),
	},
}

var creativeSchema = protocol.Properties{
	Properties: map[protocol.PropertyName]protocol.PropertySpec{
		"creativeId":       prop(protocol.TypeInteger),
		"adGroupId":        prop(protocol.TypeInteger),
		"type":             prop(protocol.TypeString),
		"properties":       prop(protocol.TypeObject),
		"moderationStatus": prop(protocol.TypeString),
	},
}
