package graph

type Group struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"displayName"`
	Mail            string   `json:"mail"`
	MailEnabled     bool     `json:"mailEnabled"`
	SecurityEnabled bool     `json:"securityEnabled"`
	GroupTypes      []string `json:"groupTypes"`
}

type GroupList struct {
	Context  string   `json:"@odata.context"`
	NextLink string   `json:"@odata.nextLink"`
	Groups   []*Group `json:"value"`
}

type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
}

type MemberList struct {
	Context  string    `json:"@odata.context"`
	NextLink string    `json:"@odata.nextLink"`
	Members  []*Member `json:"value"`
}

// Recipient is the authoritative (name, email) pair for an address, as
// opposed to the denormalized copy embedded in a membership listing.
type Recipient struct {
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
}

type RecipientList struct {
	Context    string       `json:"@odata.context"`
	NextLink   string       `json:"@odata.nextLink"`
	Recipients []*Recipient `json:"value"`
}
