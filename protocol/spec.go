package protocol

// ConnectorSpecification declares the JSON schema of acceptable configuration
// plus connector metadata. Produced once per `spec` invocation.
type ConnectorSpecification struct {
	DocumentationURL              string                  `json:"documentationUrl,omitempty"`
	ChangelogURL                  string                  `json:"changelogUrl,omitempty"`
	SupportsIncremental           bool                    `json:"supportsIncremental"`
	SupportsNormalization         bool                    `json:"supportsNormalization"`
	SupportsDBT                   bool                    `json:"supportsDBT"`
	SupportedDestinationSyncModes []DestinationSyncMode   `json:"supported_destination_sync_modes,omitempty"`
	ConnectionSpecification       ConnectionSpecification `json:"connectionSpecification"`
	AuthSpecification             *AuthSpecification      `json:"authSpecification,omitempty"`
}

// ConnectionSpecification defines the settings configurable per instance of
// the connector.
type ConnectionSpecification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Properties
	Type     string         `json:"type"` // always "object"
	Required []PropertyName `json:"required,omitempty"`
}

// AuthSpecification names the supported auth method and where its parts live
// in the connection specification.
type AuthSpecification struct {
	AuthType string               `json:"auth_type"`
	OAuth2   *OAuth2Specification `json:"oauth2Specification,omitempty"`
}

type OAuth2Specification struct {
	RootObject                []string   `json:"rootObject,omitempty"`
	OAuthFlowInitParameters   [][]string `json:"oauthFlowInitParameters,omitempty"`
	OAuthFlowOutputParameters [][]string `json:"oauthFlowOutputParameters,omitempty"`
}

// Properties is the JSON-schema property map keyed by field name.
type Properties struct {
	Properties map[PropertyName]PropertySpec `json:"properties"`
}

// PropertyName makes it clear the map key is the field name.
type PropertyName string

// PropType is the JSON-schema primitive type of a property.
type PropType string

const (
	TypeString  PropType = "string"
	TypeNumber  PropType = "number"
	TypeInteger PropType = "integer"
	TypeBoolean PropType = "boolean"
	TypeObject  PropType = "object"
	TypeArray   PropType = "array"
	TypeNull    PropType = "null"
)

// AirbytePropType narrows a primitive with platform-specific semantics.
type AirbytePropType string

const (
	TimestampWithTZ    AirbytePropType = "timestamp_with_timezone"
	TimestampWithoutTZ AirbytePropType = "timestamp_without_timezone"
	BigInteger         AirbytePropType = "big_integer"
	BigNumber          AirbytePropType = "big_number"
)

// FormatType is used for string properties with a well-known format.
type FormatType string

const (
	FormatDate     FormatType = "date"
	FormatDateTime FormatType = "date-time"
)

type PropertyType struct {
	Type        PropType        `json:"type,omitempty"`
	AirbyteType AirbytePropType `json:"airbyte_type,omitempty"`
	Format      FormatType      `json:"format,omitempty"`
}

type PropertySpec struct {
	Description string `json:"description,omitempty"`
	PropertyType
	Examples   []string                      `json:"examples,omitempty"`
	Items      map[string]any                `json:"items,omitempty"`
	Properties map[PropertyName]PropertySpec `json:"properties,omitempty"`
	Enum       []string                      `json:"enum,omitempty"`
	Default    any                           `json:"default,omitempty"`
	IsSecret   bool                          `json:"airbyte_secret,omitempty"`
}
