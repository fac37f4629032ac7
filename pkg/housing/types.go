package housing

import (
	"encoding/json"
	"net/http"

	"github.com/honeycarbs/urban-match/pkg/flexjson"
)

// Config defines housing API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the housing search API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Property is a raw rental listing with field-name unions already resolved.
// Price bounds stay nullable.
type Property struct {
	ID       string
	PriceMin *float64
	PriceMax *float64
	Href     string
	Line     string
	City     string
	State    string
	Zip      string
}

// propertyRecord mirrors the wire shape, carrying both naming conventions.
type propertyRecord struct {
	PropertyID    flexjson.String `json:"propertyId"`
	PropertyIDAlt flexjson.String `json:"property_id"`

	PriceMin    flexjson.Number `json:"priceMin"`
	PriceMinAlt flexjson.Number `json:"list_price_min"`
	PriceMax    flexjson.Number `json:"priceMax"`
	PriceMaxAlt flexjson.Number `json:"list_price_max"`

	Href flexjson.String `json:"href"`

	Location struct {
		Address struct {
			Line   flexjson.String `json:"line"`
			City   flexjson.String `json:"city"`
			State  flexjson.String `json:"state"`
			Zip    flexjson.String `json:"zip"`
			ZipAlt flexjson.String `json:"postal_code"`
		} `json:"address"`
	} `json:"location"`
}

// UnmarshalJSON resolves the camelCase/snake_case union at decode time.
func (p *Property) UnmarshalJSON(data []byte) error {
	var raw propertyRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr := raw.Location.Address
	*p = Property{
		ID:       string(flexjson.FirstNonEmpty(raw.PropertyID, raw.PropertyIDAlt)),
		PriceMin: flexjson.FirstValid(raw.PriceMin, raw.PriceMinAlt).Ptr(),
		PriceMax: flexjson.FirstValid(raw.PriceMax, raw.PriceMaxAlt).Ptr(),
		Href:     string(raw.Href),
		Line:     string(addr.Line),
		City:     string(addr.City),
		State:    string(addr.State),
		Zip:      string(flexjson.FirstNonEmpty(addr.Zip, addr.ZipAlt)),
	}

	return nil
}
