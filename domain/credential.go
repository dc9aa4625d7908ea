package domain

// Credential is an opaque token for one provider. The secret store owns
// it; the aggregation layer never inspects the token itself.
type Credential struct {
	Provider ProviderID
	Token    string
}
