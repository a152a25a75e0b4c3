package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

// In-memory repositories for exercising service logic without a database.

type memTenantRepo struct {
	tenants map[uuid.UUID]*domain.Tenant
}

func newMemTenantRepo() *memTenantRepo {
	return &memTenantRepo{tenants: make(map[uuid.UUID]*domain.Tenant)}
}

func (r *memTenantRepo) Create(_ context.Context, tenant *domain.Tenant) error {
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *memTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if tenant, ok := r.tenants[id]; ok {
		cp := *tenant
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memTenantRepo) GetBySlug(_ context.Context, slug string) (*domain.Tenant, error) {
	for _, tenant := range r.tenants {
		if tenant.Slug != nil && *tenant.Slug == slug {
			cp := *tenant
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memTenantRepo) GetByAPIKey(_ context.Context, apiKey string) (*domain.Tenant, error) {
	for _, tenant := range r.tenants {
		if tenant.APIKey != nil && *tenant.APIKey == apiKey {
			cp := *tenant
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memTenantRepo) Update(_ context.Context, tenant *domain.Tenant) error {
	if _, ok := r.tenants[tenant.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *memTenantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tenants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tenants, id)
	return nil
}

type memUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByIDAndTenant(_ context.Context, id, tenantID uuid.UUID) (*domain.User, error) {
	if user, ok := r.users[id]; ok && user.TenantID == tenantID {
		cp := *user
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmailAndTenant(_ context.Context, email string, tenantID uuid.UUID) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.TenantID == tenantID {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range r.users {
		if user.TenantID == tenantID {
			cp := *user
			users = append(users, &cp)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *memUserRepo) CountByTenant(_ context.Context, tenantID uuid.UUID) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id, tenantID uuid.UUID) error {
	if user, ok := r.users[id]; ok && user.TenantID == tenantID {
		delete(r.users, id)
		return nil
	}
	return repository.ErrNotFound
}

type memClientRepo struct {
	clients map[uuid.UUID]*domain.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: make(map[uuid.UUID]*domain.Client)}
}

func (r *memClientRepo) Create(_ context.Context, client *domain.Client) error {
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(_ context.Context, id, tenantID uuid.UUID) (*domain.Client, error) {
	if client, ok := r.clients[id]; ok && client.Ownership().VisibleTo(tenantID) {
		cp := *client
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memClientRepo) List(_ context.Context, tenantID uuid.UUID, filter repository.ClientFilter) ([]*domain.Client, error) {
	var clients []*domain.Client
	for _, client := range r.clients {
		if !client.Ownership().VisibleTo(tenantID) {
			continue
		}
		if filter.Estado != "" && string(client.Estado) != filter.Estado {
			continue
		}
		cp := *client
		clients = append(clients, &cp)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})
	return clients, nil
}

func (r *memClientRepo) Update(_ context.Context, client *domain.Client, tenantID uuid.UUID) error {
	existing, ok := r.clients[client.ID]
	if !ok || !existing.Ownership().VisibleTo(tenantID) {
		return repository.ErrNotFound
	}
	cp := *client
	cp.TenantID = existing.TenantID
	r.clients[client.ID] = &cp
	return nil
}

func (r *memClientRepo) ExistsByNit(_ context.Context, tenantID uuid.UUID, cedulaNit string) (bool, error) {
	for _, client := range r.clients {
		if client.CedulaNit == cedulaNit && client.TenantID != nil && *client.TenantID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memClientRepo) AssignLegacyToTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, client := range r.clients {
		if client.TenantID == nil {
			id := tenantID
			client.TenantID = &id
			count++
		}
	}
	return count, nil
}

type memProductRepo struct {
	products map[uuid.UUID]*domain.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*domain.Product)}
}

func (r *memProductRepo) Create(_ context.Context, product *domain.Product) error {
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id, tenantID uuid.UUID) (*domain.Product, error) {
	if product, ok := r.products[id]; ok && product.Ownership().VisibleTo(tenantID) {
		cp := *product
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memProductRepo) List(_ context.Context, tenantID uuid.UUID, filter repository.ProductFilter) ([]*domain.Product, error) {
	var products []*domain.Product
	for _, product := range r.products {
		if !product.Ownership().VisibleTo(tenantID) {
			continue
		}
		if filter.Estado != "" && string(product.Estado) != filter.Estado {
			continue
		}
		if filter.Tipo != "" && string(product.Tipo) != filter.Tipo {
			continue
		}
		cp := *product
		products = append(products, &cp)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
	return products, nil
}

func (r *memProductRepo) Update(_ context.Context, product *domain.Product, tenantID uuid.UUID) error {
	existing, ok := r.products[product.ID]
	if !ok || !existing.Ownership().VisibleTo(tenantID) {
		return repository.ErrNotFound
	}
	cp := *product
	cp.TenantID = existing.TenantID
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) ExistsByName(_ context.Context, tenantID uuid.UUID, nombre string) (bool, error) {
	for _, product := range r.products {
		if product.Nombre == nombre && product.TenantID != nil && *product.TenantID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memProductRepo) AssignLegacyToTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, product := range r.products {
		if product.TenantID == nil {
			id := tenantID
			product.TenantID = &id
			count++
		}
	}
	return count, nil
}

type memCampaignRepo struct {
	campaigns map[uuid.UUID]*domain.Campaign
}

func newMemCampaignRepo() *memCampaignRepo {
	return &memCampaignRepo{campaigns: make(map[uuid.UUID]*domain.Campaign)}
}

func (r *memCampaignRepo) Create(_ context.Context, campaign *domain.Campaign) error {
	cp := *campaign
	r.campaigns[campaign.ID] = &cp
	return nil
}

func (r *memCampaignRepo) GetByID(_ context.Context, id, tenantID uuid.UUID) (*domain.Campaign, error) {
	if campaign, ok := r.campaigns[id]; ok && campaign.TenantID == tenantID {
		cp := *campaign
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memCampaignRepo) List(_ context.Context, tenantID uuid.UUID, filter repository.CampaignFilter) ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign
	for _, campaign := range r.campaigns {
		if campaign.TenantID != tenantID {
			continue
		}
		if filter.Estado != "" && string(campaign.Estado) != filter.Estado {
			continue
		}
		cp := *campaign
		campaigns = append(campaigns, &cp)
	}
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
	})
	return campaigns, nil
}

func (r *memCampaignRepo) Update(_ context.Context, campaign *domain.Campaign) error {
	existing, ok := r.campaigns[campaign.ID]
	if !ok || existing.TenantID != campaign.TenantID {
		return repository.ErrNotFound
	}
	cp := *campaign
	r.campaigns[campaign.ID] = &cp
	return nil
}

func (r *memCampaignRepo) AssignLegacyToTenant(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type memAssetRepo struct {
	assets map[uuid.UUID]*domain.Asset
}

func newMemAssetRepo() *memAssetRepo {
	return &memAssetRepo{assets: make(map[uuid.UUID]*domain.Asset)}
}

func (r *memAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	cp := *asset
	r.assets[asset.ID] = &cp
	return nil
}

func (r *memAssetRepo) List(_ context.Context, tenantID uuid.UUID, filter repository.AssetFilter) ([]*domain.Asset, error) {
	var assets []*domain.Asset
	for _, asset := range r.assets {
		if !asset.Ownership().VisibleTo(tenantID) {
			continue
		}
		if filter.Estado != "" && string(asset.Estado) != filter.Estado {
			continue
		}
		if filter.Tipo != "" && string(asset.Tipo) != filter.Tipo {
			continue
		}
		cp := *asset
		assets = append(assets, &cp)
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].CreatedAt.Before(assets[j].CreatedAt)
	})
	return assets, nil
}

func (r *memAssetRepo) UpdateEstado(_ context.Context, id, tenantID uuid.UUID, estado domain.AssetStatus) (*domain.Asset, error) {
	asset, ok := r.assets[id]
	if !ok || !asset.Ownership().VisibleTo(tenantID) {
		return nil, repository.ErrNotFound
	}
	asset.Estado = estado
	cp := *asset
	return &cp, nil
}

func (r *memAssetRepo) AssignLegacyToTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, asset := range r.assets {
		if asset.TenantID == nil {
			id := tenantID
			asset.TenantID = &id
			count++
		}
	}
	return count, nil
}

type memLeadRepo struct {
	leads []*domain.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{}
}

func (r *memLeadRepo) Create(_ context.Context, lead *domain.Lead) error {
	cp := *lead
	r.leads = append(r.leads, &cp)
	return nil
}
