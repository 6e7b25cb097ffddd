package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
)

// In-memory repository fakes. Each fake implements just enough behavior
// for the service under test; unsupported states return the repository
// sentinel errors.

type fakeUserRepo struct {
	users map[string]*models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.SmeProfile // keyed by userID
	failWith error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.SmeProfile)}
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*models.SmeProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindByID(id string) (*models.SmeProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) Create(profile *models.SmeProfile) error {
	if _, ok := f.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = "profile-" + profile.UserID
	}
	cp := *profile
	f.profiles[profile.UserID] = &cp
	return nil
}

func (f *fakeProfileRepo) UpdateFields(userID string, updates map[string]interface{}) (*models.SmeProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	if v, ok := updates["business_name"]; ok {
		p.BusinessName = v.(string)
	}
	if v, ok := updates["location"]; ok {
		p.Location = v.(string)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) ExpireSubscriptions(now time.Time) (int64, error) {
	var n int64
	for _, p := range f.profiles {
		if p.SubscriptionStatus == models.SubscriptionStatusActive &&
			p.SubscriptionExpiry != nil && p.SubscriptionExpiry.Before(now) {
			p.SubscriptionStatus = models.SubscriptionStatusInactive
			n++
		}
	}
	return n, nil
}

type fakeVoucherRepo struct {
	vouchers      map[string]*models.Voucher // keyed by code
	profileRepo   *fakeProfileRepo
	batchFailures int
}

func newFakeVoucherRepo(profileRepo *fakeProfileRepo) *fakeVoucherRepo {
	return &fakeVoucherRepo{
		vouchers:    make(map[string]*models.Voucher),
		profileRepo: profileRepo,
	}
}

func (f *fakeVoucherRepo) CreateBatch(vouchers []models.Voucher) error {
	if f.batchFailures > 0 {
		f.batchFailures--
		return errors.New("duplicate key value violates unique constraint")
	}
	for i := range vouchers {
		v := vouchers[i]
		if v.ID == "" {
			v.ID = "voucher-" + v.Code
		}
		f.vouchers[v.Code] = &v
	}
	return nil
}

func (f *fakeVoucherRepo) FindByCode(code string) (*models.Voucher, error) {
	v, ok := f.vouchers[code]
	if !ok {
		return nil, repositories.ErrVoucherNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVoucherRepo) FindAll() ([]models.Voucher, error) {
	out := make([]models.Voucher, 0, len(f.vouchers))
	for _, v := range f.vouchers {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVoucherRepo) Count() (int64, error) {
	return int64(len(f.vouchers)), nil
}

func (f *fakeVoucherRepo) Redeem(code, profileID string, now time.Time, expiry time.Time) (*models.Voucher, error) {
	v, ok := f.vouchers[code]
	if !ok {
		return nil, repositories.ErrVoucherNotFound
	}
	if v.Status != models.VoucherStatusActive {
		return nil, repositories.ErrVoucherNotActive
	}
	v.Status = models.VoucherStatusRedeemed
	v.RedeemedAt = &now
	v.RedeemedByProfileID = &profileID

	for _, p := range f.profileRepo.profiles {
		if p.ID == profileID {
			p.SubscriptionStatus = models.SubscriptionStatusActive
			exp := expiry
			p.SubscriptionExpiry = &exp
		}
	}
	cp := *v
	return &cp, nil
}

type fakeTenderRepo struct {
	tenders map[string]*models.Tender
}

func newFakeTenderRepo() *fakeTenderRepo {
	return &fakeTenderRepo{tenders: make(map[string]*models.Tender)}
}

func (f *fakeTenderRepo) Create(tender *models.Tender) error {
	if tender.ID == "" {
		tender.ID = "tender-" + tender.Title
	}
	cp := *tender
	f.tenders[tender.ID] = &cp
	return nil
}

func (f *fakeTenderRepo) FindByID(id string) (*models.Tender, error) {
	t, ok := f.tenders[id]
	if !ok {
		return nil, repositories.ErrTenderNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTenderRepo) FindAll() ([]models.Tender, error) {
	out := make([]models.Tender, 0, len(f.tenders))
	for _, t := range f.tenders {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTenderRepo) Update(tender *models.Tender) error {
	cp := *tender
	f.tenders[tender.ID] = &cp
	return nil
}

type fakeBidRepo struct {
	bids map[string]*models.TenderBid // keyed by tenderID+"/"+profileID
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{bids: make(map[string]*models.TenderBid)}
}

func (f *fakeBidRepo) Upsert(bid *models.TenderBid) error {
	key := bid.TenderID + "/" + bid.BidderProfileID
	if existing, ok := f.bids[key]; ok {
		existing.AmountCents = bid.AmountCents
		existing.Proposal = bid.Proposal
		existing.Status = models.BidStatusSubmitted
		return nil
	}
	bid.ID = "bid-" + key
	bid.Status = models.BidStatusSubmitted
	cp := *bid
	f.bids[key] = &cp
	return nil
}

func (f *fakeBidRepo) FindByID(id string) (*models.TenderBid, error) {
	for _, b := range f.bids {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, repositories.ErrBidNotFound
}

func (f *fakeBidRepo) FindByTenderAndProfile(tenderID, profileID string) (*models.TenderBid, error) {
	b, ok := f.bids[tenderID+"/"+profileID]
	if !ok {
		return nil, repositories.ErrBidNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBidRepo) ListByTenderWithProfiles(tenderID string) ([]repositories.BidWithProfile, error) {
	var out []repositories.BidWithProfile
	for _, b := range f.bids {
		if b.TenderID == tenderID {
			out = append(out, repositories.BidWithProfile{Bid: *b})
		}
	}
	return out, nil
}

func (f *fakeBidRepo) UpdateStatus(id string, status models.BidStatus) (*models.TenderBid, error) {
	for _, b := range f.bids {
		if b.ID == id {
			b.Status = status
			cp := *b
			return &cp, nil
		}
	}
	return nil, repositories.ErrBidNotFound
}

type fakeWebsiteRepo struct {
	drafts map[string]*models.WebsiteDraft // keyed by profileID
}

func newFakeWebsiteRepo() *fakeWebsiteRepo {
	return &fakeWebsiteRepo{drafts: make(map[string]*models.WebsiteDraft)}
}

func (f *fakeWebsiteRepo) UpsertDraft(draft *models.WebsiteDraft) error {
	if existing, ok := f.drafts[draft.ProfileID]; ok {
		existing.Content = draft.Content
		return nil
	}
	draft.ID = "draft-" + draft.ProfileID
	cp := *draft
	f.drafts[draft.ProfileID] = &cp
	return nil
}

func (f *fakeWebsiteRepo) FindByProfileID(profileID string) (*models.WebsiteDraft, error) {
	d, ok := f.drafts[profileID]
	if !ok {
		return nil, repositories.ErrWebsiteNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeWebsiteRepo) FindPublishedBySlug(slug string) (*models.WebsiteDraft, error) {
	for _, d := range f.drafts {
		if d.IsPublished && d.Slug != nil && *d.Slug == slug {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repositories.ErrWebsiteNotFound
}

func (f *fakeWebsiteRepo) Publish(profileID, slug string) (*models.WebsiteDraft, error) {
	for pid, d := range f.drafts {
		if pid != profileID && d.Slug != nil && *d.Slug == slug {
			return nil, repositories.ErrSlugAlreadyTaken
		}
	}
	d, ok := f.drafts[profileID]
	if !ok {
		return nil, repositories.ErrWebsiteNotFound
	}
	s := slug
	d.Slug = &s
	d.IsPublished = true
	cp := *d
	return &cp, nil
}

type fakeSocialRepo struct {
	posts []models.SocialPost
}

func (f *fakeSocialRepo) CreateBatch(posts []models.SocialPost) error {
	f.posts = append(f.posts, posts...)
	return nil
}

func (f *fakeSocialRepo) ListByProfile(profileID string) ([]models.SocialPost, error) {
	var out []models.SocialPost
	for _, p := range f.posts {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	invoices []models.Invoice
}

func (f *fakeInvoiceRepo) Create(invoice *models.Invoice) error {
	invoice.ID = "invoice-1"
	f.invoices = append(f.invoices, *invoice)
	return nil
}

func (f *fakeInvoiceRepo) ListByProfile(profileID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if inv.ProfileID == profileID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// fakeProvider returns a canned payload or an error.
type fakeProvider struct {
	payload json.RawMessage
	err     error
	calls   int
}

func (f *fakeProvider) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func seedProfile(repo *fakeProfileRepo, userID string) *models.SmeProfile {
	profile := &models.SmeProfile{
		UserID:           userID,
		BusinessName:     "Thandi's Bakery",
		OwnerName:        "Thandi Nkosi",
		Phone:            "+27 82 000 0000",
		Email:            "thandi@bakery.za",
		Location:         "Soweto",
		Industry:         "Food",
		ProductsServices: "Bread, cakes, catering",
		PopiaConsent:     true,
	}
	_ = repo.Create(profile)
	return repo.profiles[userID]
}
