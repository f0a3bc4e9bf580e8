package dto

import (
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
)

// CreateClientRequest defines the fields for manually creating a client.
type CreateClientRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	BusinessName *string `json:"businessName"`
	BusinessType *string `json:"businessType"`
	Website      *string `json:"website"`
	Location     *string `json:"location"`
	Phone        *string `json:"phone"`
	RepName      *string `json:"repName"`
	RepRole      *string `json:"repRole"`
	RepEmail     *string `json:"repEmail"`
	RepPhone     *string `json:"repPhone"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	BusinessName *string `json:"businessName"`
	BusinessType *string `json:"businessType"`
	Website      *string `json:"website"`
	Location     *string `json:"location"`
	Phone        *string `json:"phone"`
	RepName      *string `json:"repName"`
	RepRole      *string `json:"repRole"`
	RepEmail     *string `json:"repEmail"`
	RepPhone     *string `json:"repPhone"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Query     string `form:"query"`
	SortBy    string `form:"sortBy,default=name"`
	SortOrder string `form:"sortOrder,default=asc"`
}

// ClientResponse is the outward shape of a client record.
type ClientResponse struct {
	UserID             string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	BusinessName       *string    `json:"businessName,omitempty"`
	BusinessType       *string    `json:"businessType,omitempty"`
	Website            *string    `json:"website,omitempty"`
	Location           *string    `json:"location,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	ClientSince        *time.Time `json:"clientSince,omitempty"`
	RepName            *string    `json:"repName,omitempty"`
	RepRole            *string    `json:"repRole,omitempty"`
	RepEmail           *string    `json:"repEmail,omitempty"`
	RepPhone           *string    `json:"repPhone,omitempty"`
	FreshbooksID       *string    `json:"freshbooksID,omitempty"`
	WebsiteStatus      *string    `json:"websiteStatus,omitempty"`
	LastChecked        *time.Time `json:"lastChecked,omitempty"`
	MustChangePassword bool       `json:"mustChangePassword"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ToClientResponse converts a domain.User to a ClientResponse DTO.
func ToClientResponse(u *domain.User) ClientResponse {
	resp := ClientResponse{
		UserID:             u.UserID,
		Name:               u.Name,
		Email:              u.Email,
		BusinessName:       u.BusinessName,
		BusinessType:       u.BusinessType,
		Website:            u.Website,
		Location:           u.Location,
		Phone:              u.Phone,
		ClientSince:        u.ClientSince,
		RepName:            u.RepName,
		RepRole:            u.RepRole,
		RepEmail:           u.RepEmail,
		RepPhone:           u.RepPhone,
		FreshbooksID:       u.FreshbooksID,
		LastChecked:        u.LastChecked,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.LastUpdatedAt,
	}
	if u.WebsiteStatus != nil {
		s := string(*u.WebsiteStatus)
		resp.WebsiteStatus = &s
	}
	return resp
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// ToListClientsResponse converts a slice of domain.User to the list DTO.
func ToListClientsResponse(users []domain.User) ListClientsResponse {
	clients := make([]ClientResponse, len(users))
	for i := range users {
		clients[i] = ToClientResponse(&users[i])
	}
	return ListClientsResponse{Clients: clients, Total: len(clients)}
}
