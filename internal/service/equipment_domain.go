package service

import (
	"context"
	"fmt"
	"time"

	"coldrent-backend/internal/domain"
	"coldrent-backend/internal/repository"
)

const (
	defaultCurrency       = "USD"
	fallbackSuggestedRate = 1000
)

// RentabilityCheck is the outcome of an eligibility decision. Reason is set
// only when the equipment cannot be rented.
type RentabilityCheck struct {
	CanRent bool   `json:"can_rent"`
	Reason  string `json:"reason,omitempty"`
}

// EquipmentDomainService holds the cross-entity business rules: rentability,
// suggested rates, depreciation and maintenance priority. It reaches into
// persistence only through the injected repository interfaces so it stays
// testable with fakes.
type EquipmentDomainService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentDomainService(rentalRepo repository.RentalRepository, equipmentRepo repository.EquipmentRepository) *EquipmentDomainService {
	return &EquipmentDomainService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
	}
}

// CanEquipmentBeRented checks status, condition and the absence of an active
// rental, in that order, returning the first blocking reason found.
func (s *EquipmentDomainService) CanEquipmentBeRented(ctx context.Context, eq *domain.Equipment) (*RentabilityCheck, error) {
	if !eq.IsAvailable() {
		return &RentabilityCheck{CanRent: false, Reason: unavailableReason(eq.Status)}, nil
	}
	if eq.Condition == domain.EquipmentConditionPoor {
		return &RentabilityCheck{CanRent: false, Reason: "Equipment condition is poor"}, nil
	}

	active, err := s.rentalRepo.FindActiveRentalByEquipment(ctx, eq.ID)
	if err != nil {
		return nil, fmt.Errorf("looking up active rental: %w", err)
	}
	if active != nil {
		return &RentabilityCheck{CanRent: false, Reason: "Equipment already has an active rental"}, nil
	}
	return &RentabilityCheck{CanRent: true}, nil
}

func unavailableReason(status domain.EquipmentStatus) string {
	switch status {
	case domain.EquipmentStatusRented:
		return "Equipment is rented"
	case domain.EquipmentStatusMaintenance:
		return "Equipment is in maintenance"
	case domain.EquipmentStatusOutOfService:
		return "Equipment is out of service"
	default:
		return "Equipment is not available"
	}
}

// CalculateSuggestedRentalRate averages the positive rates of the owner's
// other equipment of the same type and scales by condition. With no priced
// peers it falls back to 10% of the purchase price, then to a flat rate.
func (s *EquipmentDomainService) CalculateSuggestedRentalRate(ctx context.Context, eq *domain.Equipment) (domain.Money, error) {
	peers, err := s.equipmentRepo.FindByTypeAndOwner(ctx, eq.Type, eq.OwnerCompanyID)
	if err != nil {
		return domain.Money{}, fmt.Errorf("looking up peer equipment: %w", err)
	}

	var sum domain.Money
	count := 0
	for _, peer := range peers {
		if peer.ID == eq.ID || peer.RentalRate == nil || !peer.RentalRate.IsPositive() {
			continue
		}
		if count == 0 {
			sum = *peer.RentalRate
		} else {
			sum, err = sum.Add(*peer.RentalRate)
			if err != nil {
				return domain.Money{}, fmt.Errorf("aggregating peer rates: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		if eq.PurchasePrice != nil {
			return eq.PurchasePrice.Multiply(0.10)
		}
		return domain.NewMoney(fallbackSuggestedRate, defaultCurrency)
	}

	average, err := sum.Divide(float64(count))
	if err != nil {
		return domain.Money{}, err
	}
	return average.Multiply(conditionRateMultiplier(eq.Condition))
}

func conditionRateMultiplier(condition domain.EquipmentCondition) float64 {
	switch condition {
	case domain.EquipmentConditionNew:
		return 1.2
	case domain.EquipmentConditionGood:
		return 1.0
	case domain.EquipmentConditionFair:
		return 0.8
	case domain.EquipmentConditionPoor:
		return 0.6
	default:
		return 1.0
	}
}

// NeedsMaintenance decides from the unit's state and its service history.
func (s *EquipmentDomainService) NeedsMaintenance(eq *domain.Equipment, history []domain.Maintenance) bool {
	if eq.IsOutOfService() || eq.Condition == domain.EquipmentConditionPoor {
		return true
	}

	lastCompleted := lastCompletionDate(history)
	if lastCompleted == nil {
		return eq.InstallationDate != nil && time.Since(*eq.InstallationDate) > 6*30*24*time.Hour
	}
	return time.Since(*lastCompleted) > 3*30*24*time.Hour
}

func lastCompletionDate(history []domain.Maintenance) *time.Time {
	var last *time.Time
	for i := range history {
		m := &history[i]
		if m.Status != domain.MaintenanceStatusCompleted || m.ActualEndTime == nil {
			continue
		}
		if last == nil || m.ActualEndTime.After(*last) {
			last = m.ActualEndTime
		}
	}
	return last
}

// CalculateDepreciation is linear 10% per full year since installation capped
// at 80%, plus a condition penalty, with the total capped at 90%. Missing
// purchase price or installation date yields zero.
func (s *EquipmentDomainService) CalculateDepreciation(eq *domain.Equipment) float64 {
	if eq.PurchasePrice == nil || eq.InstallationDate == nil {
		return 0
	}

	depreciation := 0.10 * float64(fullYearsSince(*eq.InstallationDate))
	if depreciation > 0.80 {
		depreciation = 0.80
	}
	depreciation += conditionDepreciationAdjustment(eq.Condition)
	if depreciation > 0.90 {
		depreciation = 0.90
	}
	return depreciation
}

func fullYearsSince(t time.Time) int {
	now := time.Now()
	years := now.Year() - t.Year()
	if t.AddDate(years, 0, 0).After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func conditionDepreciationAdjustment(condition domain.EquipmentCondition) float64 {
	switch condition {
	case domain.EquipmentConditionGood:
		return 0.05
	case domain.EquipmentConditionFair:
		return 0.15
	case domain.EquipmentConditionPoor:
		return 0.30
	default:
		return 0
	}
}

// CalculateCurrentValue is the purchase price scaled by remaining value.
func (s *EquipmentDomainService) CalculateCurrentValue(eq *domain.Equipment) (domain.Money, error) {
	if eq.PurchasePrice == nil {
		return domain.NewMoney(0, defaultCurrency)
	}
	return eq.PurchasePrice.Multiply(1 - s.CalculateDepreciation(eq))
}

// GetMaintenancePriority ranks urgency from unit state, rental pressure and
// the maintenance-need decision.
func (s *EquipmentDomainService) GetMaintenancePriority(eq *domain.Equipment, history []domain.Maintenance) domain.MaintenancePriority {
	if eq.IsOutOfService() {
		return domain.MaintenancePriorityCritical
	}
	if eq.Condition == domain.EquipmentConditionPoor {
		return domain.MaintenancePriorityHigh
	}
	if s.NeedsMaintenance(eq, history) {
		if eq.IsRented() {
			return domain.MaintenancePriorityHigh
		}
		return domain.MaintenancePriorityMedium
	}
	return domain.MaintenancePriorityLow
}
