package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"ecofinds/model"
)

const minEcoPointsReward = 5

type ItemRepository interface {
	Search(category, search string) ([]model.Item, error)
	GetByID(id string) (*model.Item, error)
	Insert(item *model.Item) error
	MarkSold(id string) (bool, error)
}

type pointsAdder interface {
	AddEcoPoints(id string, points int) error
}

type transactionWriter interface {
	Insert(t *model.Transaction) error
}

type ItemUsecase struct {
	itemRepo ItemRepository
	userRepo pointsAdder
	txRepo   transactionWriter
}

func NewItemUsecase(itemRepo ItemRepository, userRepo pointsAdder, txRepo transactionWriter) *ItemUsecase {
	return &ItemUsecase{
		itemRepo: itemRepo,
		userRepo: userRepo,
		txRepo:   txRepo,
	}
}

func (u *ItemUsecase) SearchItems(category, search string) ([]model.Item, error) {
	return u.itemRepo.Search(category, search)
}

func (u *ItemUsecase) GetItemByID(id string) (*model.Item, error) {
	return u.itemRepo.GetByID(id)
}

// CreateItem lists a new item for the seller. The eco-point reward scales
// with price: 2% of the price, floored at 5 points.
func (u *ItemUsecase) CreateItem(sellerID, title, description string, price decimal.Decimal, category, condition string, images []string) (*model.Item, error) {
	reward := int(price.Mul(decimal.NewFromFloat(0.02)).IntPart())
	if reward < minEcoPointsReward {
		reward = minEcoPointsReward
	}

	item := &model.Item{
		ID:              newID(),
		Title:           title,
		Description:     description,
		Price:           price,
		Category:        category,
		Condition:       condition,
		Images:          images,
		SellerID:        sellerID,
		EcoPointsReward: reward,
		IsAvailable:     true,
		CreatedAt:       time.Now(),
	}

	if err := u.itemRepo.Insert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Purchase runs the Available -> Sold transition for the buyer and returns
// the eco points earned. MarkSold decides a purchase race: only the winner
// proceeds to the points award and the transaction record, the loser gets
// ErrItemUnavailable.
func (u *ItemUsecase) Purchase(itemID, buyerID string) (int, error) {
	item, err := u.itemRepo.GetByID(itemID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, ErrItemNotFound
	}
	if item.SellerID == buyerID {
		return 0, ErrSelfPurchase
	}
	if !item.IsAvailable {
		return 0, ErrItemUnavailable
	}

	sold, err := u.itemRepo.MarkSold(itemID)
	if err != nil {
		return 0, err
	}
	if !sold {
		return 0, ErrItemUnavailable
	}

	if err := u.userRepo.AddEcoPoints(buyerID, item.EcoPointsReward); err != nil {
		return 0, err
	}

	tx := &model.Transaction{
		ID:              newID(),
		ItemID:          item.ID,
		BuyerID:         buyerID,
		SellerID:        item.SellerID,
		Amount:          item.Price,
		EcoPointsEarned: item.EcoPointsReward,
		Status:          "completed",
		CreatedAt:       time.Now(),
	}
	if err := u.txRepo.Insert(tx); err != nil {
		return 0, err
	}

	return item.EcoPointsReward, nil
}
