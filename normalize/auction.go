package normalize

import (
	"fmt"
	"time"

	"utyadmin/models"
)

type BidPayload struct {
	MongoID   string `json:"_id"`
	ID        string `json:"id"`
	UserID    Assoc  `json:"userId"`
	Amount    Number `json:"amount"`
	CreatedAt string `json:"createdAt"`
}

type AuctionPayload struct {
	MongoID      string       `json:"_id"`
	ID           string       `json:"id"`
	ListingID    Assoc        `json:"listingId"`
	StartPrice   Number       `json:"startPrice"`
	CurrentPrice Number       `json:"currentPrice"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Status       string       `json:"status"`
	Bids         []BidPayload `json:"bids"`
	WinnerID     Assoc        `json:"winnerId"`
}

// Auction maps a backend auction. now is the clock used to infer ENDED for
// auctions whose end date has passed but whose backend status has not been
// transitioned yet; the inference only applies when the backend actually
// sent an end date.
func Auction(p AuctionPayload, index int, now time.Time) models.Auction {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("auction-%d", index+1)
	}

	var listing models.Listing
	if s, ok := p.ListingID.StringID(); ok {
		listing = Listing(ListingPayload{MongoID: s}, index)
	} else {
		var lp ListingPayload
		p.ListingID.Object(&lp)
		listing = Listing(lp, index)
	}

	bids := make([]models.Bid, 0, len(p.Bids))
	for i, bp := range p.Bids {
		bidID := pickID(bp.MongoID, bp.ID)
		if bidID == "" {
			bidID = fmt.Sprintf("%s-bid-%d", id, i+1)
		}
		bidder := UserFromAssoc(bp.UserID, i)
		bids = append(bids, models.Bid{
			ID:        bidID,
			AuctionID: id,
			UserID:    bidder.ID,
			User:      bidder,
			Amount:    float64(bp.Amount),
			CreatedAt: Time(bp.CreatedAt),
		})
	}

	status := AuctionStatus(p.Status)
	endDate := Time(p.EndDate)
	if status == models.AuctionActive && text(p.EndDate) != "" && endDate.Before(now) {
		status = models.AuctionEnded
	}

	var winner *models.User
	winnerID := ""
	if p.WinnerID.Present() {
		u := UserFromAssoc(p.WinnerID, index)
		winner = &u
		winnerID = u.ID
	}

	return models.Auction{
		ID:           id,
		ListingID:    listing.ID,
		Listing:      listing,
		StartPrice:   float64(p.StartPrice),
		CurrentPrice: float64(p.CurrentPrice),
		StartDate:    Time(p.StartDate),
		EndDate:      endDate,
		Status:       status,
		Bids:         bids,
		WinnerID:     winnerID,
		Winner:       winner,
	}
}
