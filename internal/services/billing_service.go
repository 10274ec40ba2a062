package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/metrics"
	"tourcrm/internal/models"
	"tourcrm/internal/utils"
)

// CheckoutProvider opens a hosted checkout for a plan and returns the URL to
// redirect the browser to.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, plan models.Plan) (string, error)
}

type CheckoutProviderFunc func(ctx context.Context, plan models.Plan) (string, error)

func (f CheckoutProviderFunc) CreateSession(ctx context.Context, plan models.Plan) (string, error) {
	return f(ctx, plan)
}

// StripeCheckout creates subscription checkout sessions. Prices maps plan ids
// to Stripe price ids.
type StripeCheckout struct {
	api        *client.API
	prices     map[string]string
	successURL string
	cancelURL  string
}

func NewStripeCheckout(secretKey string, prices map[string]string, successURL, cancelURL string) *StripeCheckout {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeCheckout{api: sc, prices: prices, successURL: successURL, cancelURL: cancelURL}
}

func (s *StripeCheckout) CreateSession(ctx context.Context, plan models.Plan) (string, error) {
	price, ok := s.prices[string(plan.ID)]
	if !ok || price == "" {
		return "", fmt.Errorf("no stripe price configured for plan %s", plan.ID)
	}
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(price), Quantity: stripe.Int64(1)},
		},
	}
	params.Context = ctx
	params.AddMetadata("plan_id", string(plan.ID))
	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, nil
}

type BillingService struct {
	provider CheckoutProvider
	delay    time.Duration
}

func NewBillingService(provider CheckoutProvider, delay time.Duration) *BillingService {
	return &BillingService{provider: provider, delay: delay}
}

func (s *BillingService) Plans() []models.Plan {
	out := make([]models.Plan, len(models.Plans))
	for i, p := range models.Plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Checkout starts an upgrade to the requested plan. Provider failures come
// back as external-service errors for the banner.
func (s *BillingService) Checkout(ctx context.Context, req models.CheckoutRequest) (models.CheckoutIntent, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.CheckoutIntent{}, err
	}
	plan, ok := models.FindPlan(req.PlanID)
	if !ok {
		return models.CheckoutIntent{}, apperrors.FieldError("plan_id", "is not a recognized plan")
	}
	if err := Delay(ctx, s.delay); err != nil {
		return models.CheckoutIntent{}, err
	}
	if s.provider == nil {
		err := apperrors.External("checkout", errors.New("checkout provider is not configured"))
		metrics.ObserveMutation("checkout", "create", err)
		return models.CheckoutIntent{}, err
	}

	url, err := s.provider.CreateSession(ctx, plan)
	if err != nil {
		log.Errorf("[checkout][create][err] plan=%s: %v", plan.ID, err)
		ext := apperrors.External("checkout", err)
		metrics.ObserveMutation("checkout", "create", ext)
		return models.CheckoutIntent{}, ext
	}
	metrics.ObserveMutation("checkout", "create", nil)
	log.Infof("[checkout][create][ok] plan=%s", plan.ID)
	return models.CheckoutIntent{PlanID: plan.ID, RedirectURL: url}, nil
}
