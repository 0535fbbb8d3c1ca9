package dtos

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"max=5000"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EngageRequest covers both the toggle types and comments; content is only
// meaningful for comments and is capped there.
type EngageRequest struct {
	Type    string `json:"type" binding:"required"`
	Content string `json:"content" binding:"max=2000"`
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Logo        string `json:"logo" binding:"omitempty,url"`
	Description string `json:"description"`
	Website     string `json:"website" binding:"omitempty,url"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
}

type BlogPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsPublished bool   `json:"is_published"`
}

type SetApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
