package fiscal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
)

// fallbackOriginCode prefixes generated item codes when the product has no
// origin country configured.
const fallbackOriginCode = "ISW"

// itemCodePrefix assembles the non-numeric part of a generated item code:
// origin country, product type, packaging unit and quantity unit codes.
func itemCodePrefix(item *entity.Item) string {
	origin := item.OriginCountryCode
	if origin == "" {
		origin = fallbackOriginCode
	}
	itemType := item.ItemType
	if itemType == "" {
		itemType = entity.ItemTypeFinished
	}
	return origin + itemType + item.PackagingUnitCode + item.QuantityUnitCode
}

// generateItemCode produces a unique item code from the shared counter,
// skipping over values already taken by user-assigned codes. The counter
// itself is serialized by the storage layer, so two concurrent creations
// never see the same value.
func (s *Service) generateItemCode(ctx context.Context, item *entity.Item) (string, error) {
	prefix := itemCodePrefix(item)

	for {
		seq, err := s.sequences.NextItemCode(ctx)
		if err != nil {
			return "", fmt.Errorf("next item code sequence: %w", err)
		}

		code := fmt.Sprintf("%s%07d", prefix, seq)
		taken, err := s.items.CodeExists(ctx, code, item.ID)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
		s.log.Debug().Str("code", code).Msg("generated item code collides, advancing sequence")
	}
}

// RegisterItem stores a new item master record and registers it with the
// gateway. A missing item code is generated; a user-supplied duplicate is
// rejected.
func (s *Service) RegisterItem(ctx context.Context, item *entity.Item, user entity.User) error {
	if item.ItemCode == "" {
		code, err := s.generateItemCode(ctx, item)
		if err != nil {
			return err
		}
		item.ItemCode = code
	} else {
		taken, err := s.items.CodeExists(ctx, item.ItemCode, item.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItemCode, item.ItemCode)
		}
	}

	if err := s.items.Create(ctx, item); err != nil {
		return err
	}

	payload := gateway.BuildItemRegistration(item, s.company, user, false)
	if _, err := s.gw.RegisterItem(ctx, payload); err != nil {
		return fmt.Errorf("register item %s: %w", item.ItemCode, err)
	}

	s.log.Info().Str("itemCd", item.ItemCode).Str("itemClsCd", item.ClassificationCode).Msg("item registered")
	return nil
}

// UpdateItem updates an item master record and pushes the change to the
// gateway. Unlike creation, a duplicate code here always fails: silently
// renumbering an existing item would orphan its fiscal history.
func (s *Service) UpdateItem(ctx context.Context, item *entity.Item, user entity.User) error {
	if item.ItemCode == "" {
		code, err := s.generateItemCode(ctx, item)
		if err != nil {
			return err
		}
		item.ItemCode = code
	} else {
		taken, err := s.items.CodeExists(ctx, item.ItemCode, item.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateItemCode, item.ItemCode)
		}
	}

	if err := s.items.Update(ctx, item); err != nil {
		return err
	}

	payload := gateway.BuildItemRegistration(item, s.company, user, true)
	if _, err := s.gw.UpdateItem(ctx, payload); err != nil {
		return fmt.Errorf("update item %s: %w", item.ItemCode, err)
	}

	s.log.Info().Str("itemCd", item.ItemCode).Msg("item updated")
	return nil
}

// SetItemQuantity records a manual on-hand correction: the new absolute
// quantity is declared to the gateway as the item's residual and the local
// ledger is moved to match.
func (s *Service) SetItemQuantity(ctx context.Context, itemID string, qty decimal.Decimal, user entity.User) error {
	if qty.IsNegative() {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	master := gateway.BuildStockMaster(s.company, user, []gateway.StockBalance{
		{ItemCd: item.ItemCode, RsdQty: qty},
	})
	if err := stockCallResult(s.gw.SubmitStockMaster(ctx, master)); err != nil {
		if s.strictStock {
			return fmt.Errorf("report quantity change: %w", err)
		}
		s.log.Error().Err(err).Str("itemCd", item.ItemCode).Msg("quantity change submission failed, continuing")
	}

	onHand, err := s.stock.OnHand(ctx, itemID)
	if err != nil {
		return fmt.Errorf("read on-hand for %s: %w", item.ItemCode, err)
	}
	if _, err := s.stock.ApplyDelta(ctx, itemID, qty.Sub(onHand)); err != nil {
		return fmt.Errorf("apply stock delta for %s: %w", item.ItemCode, err)
	}

	s.log.Info().Str("itemCd", item.ItemCode).Str("rsdQty", qty.String()).Msg("on-hand quantity changed")
	return nil
}

// SyncItemComposition declares the bill of materials of a manufactured item,
// one composition entry per component. Gateway failures are logged per line
// so one bad component does not block the rest.
func (s *Service) SyncItemComposition(ctx context.Context, parentItemID string, user entity.User) error {
	parent, err := s.items.GetByID(ctx, parentItemID)
	if err != nil {
		return err
	}

	bom, err := s.items.GetComposition(ctx, parentItemID)
	if err != nil {
		return err
	}

	for _, line := range bom {
		component, err := s.items.GetByID(ctx, line.ComponentItemID)
		if err != nil {
			return fmt.Errorf("resolve component %s: %w", line.ComponentItemID, err)
		}

		payload := gateway.BuildItemComposition(parent, component, line.Quantity, s.company, user)
		if _, err := s.gw.SubmitItemComposition(ctx, payload); err != nil {
			s.log.Error().Err(err).
				Str("itemCd", parent.ItemCode).
				Str("cpstItemCd", component.ItemCode).
				Msg("item composition submission failed")
		}
	}
	return nil
}
