package accounts

import (
	"errors"

	"rentdesk/server/internal/models"
	"rentdesk/server/internal/store"

	"github.com/sirupsen/logrus"
)

// Reconciler makes sure every authenticated account has a profile and,
// for tenant-typed accounts, that the profile carries the lease and
// financial snapshot of any tenant record matching the account's email.
//
// It runs once per sign-in, off the normal request path. It is best
// effort: every failure is logged and swallowed, and the caller always
// gets a renderable profile back, defaulting to the tenant user type.
type Reconciler struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewReconciler(s *store.Store, logger *logrus.Logger) *Reconciler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Reconciler{store: s, logger: logger}
}

// Reconcile ensures a profile exists for the user and back-fills tenant
// data by email match. Never returns nil.
func (r *Reconciler) Reconcile(user *models.User) *models.Profile {
	log := r.logger.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email})

	profile, err := r.store.GetProfileByUser(user.ID)
	switch {
	case err == nil:
		// adopt the existing profile
	case errors.Is(err, store.ErrNotFound):
		profile = r.createDefaultProfile(user, log)
	default:
		log.WithError(err).Error("Profile lookup failed")
		return fallbackProfile(user.ID)
	}

	if profile.UserType == models.UserTypeTenant && profile.PropertyID == nil {
		r.linkTenant(user, profile, log)
	}

	return profile
}

// createDefaultProfile builds a tenant-typed profile, pre-filling contact
// and financial fields from a tenant record matching the email when one
// exists. A failed insert degrades to an unsaved fallback profile.
func (r *Reconciler) createDefaultProfile(user *models.User, log *logrus.Entry) *models.Profile {
	profile := &models.Profile{
		UserID:   user.ID,
		UserType: models.UserTypeTenant,
	}

	tenant, err := r.store.FindTenantByEmail(user.Email)
	if err == nil {
		profile.FullName = tenant.Name
		profile.Phone = tenant.Phone
		profile.MonthlyRent = tenant.MonthlyRent
		profile.DepositAmount = tenant.DepositAmount
		profile.Balance = tenant.Balance
	} else if !errors.Is(err, store.ErrNotFound) {
		log.WithError(err).Warn("Tenant pre-fill lookup failed")
	}

	if err := r.store.CreateProfile(profile); err != nil {
		log.WithError(err).Error("Failed to create default profile")
		return fallbackProfile(user.ID)
	}
	return profile
}

// linkTenant claims the matching tenant record for this account and
// copies its lease/financial fields onto the profile. The claim is a
// single conditional update, so a concurrent sign-in for the same email
// loses cleanly instead of double-linking.
func (r *Reconciler) linkTenant(user *models.User, profile *models.Profile, log *logrus.Entry) {
	tenant, err := r.store.FindTenantByEmail(user.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.WithError(err).Warn("Tenant link lookup failed")
		}
		return
	}

	switch {
	case tenant.UserID == nil:
		linked, err := r.store.LinkTenantToUser(tenant.ID, user.ID)
		if err != nil {
			log.WithError(err).Error("Failed to link tenant record")
			return
		}
		if !linked {
			log.WithField("tenant_id", tenant.ID).Info("Tenant record claimed by a concurrent sign-in")
			return
		}
	case *tenant.UserID != user.ID:
		// already someone else's record
		return
	}

	updates := map[string]interface{}{
		"full_name":      tenant.Name,
		"phone":          tenant.Phone,
		"property_id":    tenant.PropertyID,
		"unit":           tenant.Unit,
		"lease_start":    tenant.LeaseStart,
		"lease_end":      tenant.LeaseEnd,
		"monthly_rent":   tenant.MonthlyRent,
		"deposit_amount": tenant.DepositAmount,
		"balance":        tenant.Balance,
	}

	updated, err := r.store.UpdateProfile(profile.ID, updates)
	if err != nil {
		// partial completion: tenant is linked but the profile kept its
		// old snapshot; the next sign-in repairs it
		log.WithError(err).Error("Failed to copy tenant snapshot onto profile")
		return
	}
	*profile = *updated

	log.WithField("tenant_id", tenant.ID).Info("Linked tenant record to account")
}

func fallbackProfile(userID uint) *models.Profile {
	return &models.Profile{UserID: userID, UserType: models.UserTypeTenant}
}
