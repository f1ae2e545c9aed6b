package form

import "net/url"

// Result page paths and navigation query keys.
const (
	ResultPath = "/result"
	ErrorPath  = "/error"

	ParamTableNo    = "tableNo"
	ParamName       = "name"
	ParamDepartment = "department"
	ParamMessage    = "message"
	ParamRole       = "role"
	ParamError      = "error"
)

// Navigation is a page transition carrying an outcome as query parameters.
// The tableNo key carries the assignment even when it is a role label.
type Navigation struct {
	Path   string
	Params url.Values
}

// URL renders the navigation target as a relative URL.
func (n Navigation) URL() string {
	if len(n.Params) == 0 {
		return n.Path
	}
	return n.Path + "?" + n.Params.Encode()
}

// SuccessNavigation encodes an accepted registration.
func SuccessNavigation(r Reply) Navigation {
	return Navigation{
		Path: ResultPath,
		Params: url.Values{
			ParamTableNo:    {r.Assignment},
			ParamName:       {r.Name},
			ParamDepartment: {r.Department},
			ParamMessage:    {r.Message},
		},
	}
}

// ErrorNavigation encodes any failure as a single display-ready error message.
func ErrorNavigation(message string) Navigation {
	return Navigation{
		Path:   ErrorPath,
		Params: url.Values{ParamError: {message}},
	}
}
