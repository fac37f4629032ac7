package jobsearch

import (
	"encoding/json"
	"net/http"

	"github.com/honeycarbs/urban-match/pkg/flexjson"
)

// Config defines jobs API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the jobs search API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Job is a raw job listing with field-name unions already resolved
// (camelCase preferred over snake_case). Salary bounds stay nullable.
type Job struct {
	ID           string
	Title        string
	Description  string
	SalaryMin    *float64
	SalaryMax    *float64
	RedirectURL  string
	Company      string
	Location     string
	ContractType string
	ContractTime string
}

// jobRecord mirrors the wire shape, carrying both naming conventions.
type jobRecord struct {
	ID           flexjson.String `json:"id"`
	Title        flexjson.String `json:"title"`
	Description  flexjson.String `json:"description"`
	SalaryMin    flexjson.Number `json:"salaryMin"`
	SalaryMinAlt flexjson.Number `json:"salary_min"`
	SalaryMax    flexjson.Number `json:"salaryMax"`
	SalaryMaxAlt flexjson.Number `json:"salary_max"`

	RedirectURL    flexjson.String `json:"redirectUrl"`
	RedirectURLAlt flexjson.String `json:"redirect_url"`

	Company  nameRef `json:"company"`
	Location nameRef `json:"location"`

	ContractType    flexjson.String `json:"contractType"`
	ContractTypeAlt flexjson.String `json:"contract_type"`
	ContractTime    flexjson.String `json:"contractTime"`
	ContractTimeAlt flexjson.String `json:"contract_time"`
}

type nameRef struct {
	DisplayName    flexjson.String `json:"displayName"`
	DisplayNameAlt flexjson.String `json:"display_name"`
}

func (n nameRef) resolve() string {
	return string(flexjson.FirstNonEmpty(n.DisplayName, n.DisplayNameAlt))
}

// UnmarshalJSON resolves the camelCase/snake_case union at decode time so
// downstream code never touches alternate keys.
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw jobRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*j = Job{
		ID:           string(raw.ID),
		Title:        string(raw.Title),
		Description:  string(raw.Description),
		SalaryMin:    flexjson.FirstValid(raw.SalaryMin, raw.SalaryMinAlt).Ptr(),
		SalaryMax:    flexjson.FirstValid(raw.SalaryMax, raw.SalaryMaxAlt).Ptr(),
		RedirectURL:  string(flexjson.FirstNonEmpty(raw.RedirectURL, raw.RedirectURLAlt)),
		Company:      raw.Company.resolve(),
		Location:     raw.Location.resolve(),
		ContractType: string(flexjson.FirstNonEmpty(raw.ContractType, raw.ContractTypeAlt)),
		ContractTime: string(flexjson.FirstNonEmpty(raw.ContractTime, raw.ContractTimeAlt)),
	}

	return nil
}
