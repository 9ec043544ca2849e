package companies

type CreateCompanyRequestDTO struct {
	Name *string `json:"name"`
}
