package client

import (
	"context"
	"time"

	"github.com/guardia-security/guardia-backend-go/internal/domain/client"
	"github.com/shopspring/decimal"
)

type ClientServiceImpl struct {
	client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{ClientRepository: clientRepo}
}

func parseDate(v string) time.Time {
	t, _ := time.Parse("2006-01-02", v)
	return t
}

// CreateClient implements client.ClientService.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	newClient := client.Client{
		CompanyName:         req.CompanyName,
		RegistrationNumber:  req.RegistrationNumber,
		TaxID:               req.TaxID,
		IndustrySector:      req.IndustrySector,
		PrimaryContactName:  req.PrimaryContactName,
		PrimaryContactPhone: req.PrimaryContactPhone,
		PrimaryContactEmail: req.PrimaryContactEmail,
		BillingContactName:  req.BillingContactName,
		BillingContactEmail: req.BillingContactEmail,
		Address:             req.Address,
		City:                req.City,
		Country:             req.Country,
		ContractStartDate:   parseDate(req.ContractStartDate),
		ContractStatus:      client.ContractActive,
		PaymentTerms:        req.PaymentTerms,
		BillingFrequency:    req.BillingFrequency,
		Currency:            req.Currency,
		Notes:               req.Notes,
		IsActive:            true,
	}
	if newClient.Country == "" {
		newClient.Country = "Haiti"
	}
	if newClient.PaymentTerms == "" {
		newClient.PaymentTerms = "30_days"
	}
	if newClient.BillingFrequency == "" {
		newClient.BillingFrequency = "monthly"
	}
	if newClient.Currency == "" {
		newClient.Currency = "HTG"
	}
	if req.ContractEndDate != nil {
		end := parseDate(*req.ContractEndDate)
		newClient.ContractEndDate = &end
	}
	if req.DiscountPercentage != nil {
		pct, _ := decimal.NewFromString(*req.DiscountPercentage)
		newClient.DiscountPercentage = pct
	}

	created, err := s.ClientRepository.Create(ctx, newClient)
	if err != nil {
		return client.ClientResponse{}, err
	}

	return client.NewClientResponse(created), nil
}

// GetClient implements client.ClientService.
func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.ClientRepository.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return client.NewClientResponse(c), nil
}

// UpdateClient implements client.ClientService.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	c, err := s.ClientRepository.GetByID(ctx, req.ID)
	if err != nil {
		return client.ClientResponse{}, err
	}

	if req.CompanyName != nil {
		c.CompanyName = *req.CompanyName
	}
	if req.PrimaryContactName != nil {
		c.PrimaryContactName = *req.PrimaryContactName
	}
	if req.PrimaryContactPhone != nil {
		c.PrimaryContactPhone = *req.PrimaryContactPhone
	}
	if req.PrimaryContactEmail != nil {
		c.PrimaryContactEmail = *req.PrimaryContactEmail
	}
	if req.BillingContactName != nil {
		c.BillingContactName = req.BillingContactName
	}
	if req.BillingContactEmail != nil {
		c.BillingContactEmail = req.BillingContactEmail
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.ContractStatus != nil {
		c.ContractStatus = client.ContractStatus(*req.ContractStatus)
	}
	if req.ContractEndDate != nil {
		end := parseDate(*req.ContractEndDate)
		c.ContractEndDate = &end
	}
	if req.PaymentTerms != nil {
		c.PaymentTerms = *req.PaymentTerms
	}
	if req.BillingFrequency != nil {
		c.BillingFrequency = *req.BillingFrequency
	}
	if req.DiscountPercentage != nil {
		pct, _ := decimal.NewFromString(*req.DiscountPercentage)
		c.DiscountPercentage = pct
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.ClientRepository.Update(ctx, c); err != nil {
		return client.ClientResponse{}, err
	}

	return client.NewClientResponse(c), nil
}

// ListClients implements client.ClientService.
func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.ClientFilter) (client.ListClientsResponse, error) {
	filter.Normalize()

	clients, total, err := s.ClientRepository.List(ctx, filter)
	if err != nil {
		return client.ListClientsResponse{}, err
	}

	resp := client.ListClientsResponse{
		Clients: make([]client.ClientResponse, 0, len(clients)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, client.NewClientResponse(c))
	}

	return resp, nil
}
