package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/AlessioQuercia/hearts-gym/utils"
)

// State is the mutable engine state for one round of Hearts. It is
// owned by the simulation loop; everything downstream of the loop reads
// the immutable View published by Snapshot instead.
type State struct {
	NumPlayers    int
	Hands         [][]Card
	CurrentPlayer int

	current  *Trick
	previous *Trick

	// Per-player records of the most recent play, kept for lazy reward
	// delivery: a player is scored on their next turn opportunity, not
	// right after acting.
	prevHands   [][]Card
	prevPlayed  []*Card
	prevIllegal []bool

	prevWasFirstTrick bool
	prevWinner        int
	prevPenalty       *int

	penalties    []int
	heartsWon    []int
	queenWinner  int
	heartsBroken bool
	firstTrick   bool
	tricksPlayed int
}

// NewState deals a shuffled deck to numPlayers hands and hands the lead
// to the holder of the Two of Clubs.
func NewState(numPlayers int, rng *rand.Rand) (*State, error) {
	deck := NewDeck()
	deck.Shuffle(rng)
	hands, err := deck.Deal(numPlayers)
	if err != nil {
		return nil, err
	}

	s := newState(hands)
	s.firstTrick = true
	for i, hand := range hands {
		if utils.FindIndex(hand, TwoOfClubs) >= 0 {
			s.CurrentPlayer = i
			break
		}
	}
	return s, nil
}

// NewStateFromHands builds a round from predetermined hands with the
// given player leading, for scripted scenarios. The round counts as the
// opening trick only when a hand still holds the Two of Clubs.
func NewStateFromHands(hands [][]Card, leader int) (*State, error) {
	if len(hands) < 2 {
		return nil, fmt.Errorf("need at least two hands, got %d", len(hands))
	}
	if leader < 0 || leader >= len(hands) {
		return nil, fmt.Errorf("leader %d out of range", leader)
	}

	copied := make([][]Card, len(hands))
	for i, hand := range hands {
		copied[i] = append([]Card(nil), hand...)
	}

	s := newState(copied)
	s.CurrentPlayer = leader
	for _, hand := range copied {
		if utils.FindIndex(hand, TwoOfClubs) >= 0 {
			s.firstTrick = true
		}
	}
	return s, nil
}

func newState(hands [][]Card) *State {
	numPlayers := len(hands)
	return &State{
		NumPlayers:  numPlayers,
		Hands:       hands,
		current:     NewTrick(),
		prevHands:   make([][]Card, numPlayers),
		prevPlayed:  make([]*Card, numPlayers),
		prevIllegal: make([]bool, numPlayers),
		prevWinner:  -1,
		penalties:   make([]int, numPlayers),
		heartsWon:   make([]int, numPlayers),
		queenWinner: -1,
	}
}

// LegalMoves returns the cards the current player may legally play.
func (s *State) LegalMoves() []Card {
	hand := s.Hands[s.CurrentPlayer]

	if len(s.current.Cards) == 0 {
		return s.legalLeads(hand)
	}

	lead, _ := s.current.LeadingSuit()
	var follows []Card
	for _, c := range hand {
		if c.Suit == lead {
			follows = append(follows, c)
		}
	}
	if len(follows) > 0 {
		return follows
	}

	// Void in the leading suit: any card, except that no penalty card
	// may be discarded on the first trick unless the hand allows
	// nothing else.
	if s.firstTrick {
		var clean []Card
		for _, c := range hand {
			if !c.IsPenaltyCard() {
				clean = append(clean, c)
			}
		}
		if len(clean) > 0 {
			return clean
		}
	}
	return append([]Card(nil), hand...)
}

func (s *State) legalLeads(hand []Card) []Card {
	// The Two of Clubs opens the round.
	if s.firstTrick {
		if i := utils.FindIndex(hand, TwoOfClubs); i >= 0 {
			return []Card{TwoOfClubs}
		}
	}

	// Hearts may not be led until broken.
	if !s.heartsBroken {
		var nonHearts []Card
		for _, c := range hand {
			if c.Suit != Hearts {
				nonHearts = append(nonHearts, c)
			}
		}
		if len(nonHearts) > 0 {
			return nonHearts
		}
	}
	return append([]Card(nil), hand...)
}

// IsLegal reports whether the current player may play the given card.
func (s *State) IsLegal(card Card) bool {
	return utils.Contains(s.LegalMoves(), card)
}

// Play applies the current player's card, resolving the trick when it
// completes, and reports whether the play ended a trick. An illegal
// card is recorded as such and replaced by the first legal move, so the
// round always stays consistent.
func (s *State) Play(card Card) (bool, error) {
	player := s.CurrentPlayer
	hand := s.Hands[player]

	if utils.FindIndex(hand, card) < 0 {
		return false, fmt.Errorf("player %d does not hold %s", player, card)
	}

	legal := s.IsLegal(card)
	if !legal {
		card = s.LegalMoves()[0]
	}

	// Record the pre-play hand for lazy reward delivery.
	s.prevHands[player] = append([]Card(nil), hand...)
	played := card
	s.prevPlayed[player] = &played
	s.prevIllegal[player] = !legal

	s.Hands[player] = utils.Remove(hand, card)
	s.current.Add(card, player)
	if card.Suit == Hearts {
		s.heartsBroken = true
	}

	if len(s.current.Cards) < s.NumPlayers {
		s.CurrentPlayer = (player + 1) % s.NumPlayers
		return false, nil
	}

	s.resolveTrick()
	return true, nil
}

func (s *State) resolveTrick() {
	winner := s.current.Winner()
	penalty := s.current.Penalty()

	s.penalties[winner] += penalty
	for _, pc := range s.current.Cards {
		if pc.Card.Suit == Hearts {
			s.heartsWon[winner]++
		}
		if pc.Card == QueenOfSpades {
			s.queenWinner = winner
		}
	}

	s.previous = s.current
	s.current = NewTrick()
	s.prevWasFirstTrick = s.firstTrick
	s.prevWinner = winner
	s.prevPenalty = &penalty
	s.firstTrick = false
	s.tricksPlayed++
	s.CurrentPlayer = winner
}

// RoundOver reports whether every card has been played.
func (s *State) RoundOver() bool {
	for _, hand := range s.Hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

// Penalties returns the accumulated penalty points per player.
func (s *State) Penalties() []int {
	return append([]int(nil), s.penalties...)
}

// TricksPlayed returns the number of completed tricks.
func (s *State) TricksPlayed() int {
	return s.tricksPlayed
}

// HasShotTheMoon reports whether the player has collected every penalty
// card this round.
func (s *State) HasShotTheMoon(player int) bool {
	return s.heartsWon[player] == NumHearts && s.queenWinner == player
}

// Snapshot publishes the immutable view of the current state that the
// reward evaluator reads. The returned View shares nothing mutable with
// the State.
func (s *State) Snapshot() *View {
	v := &View{
		NumPlayers:    s.NumPlayers,
		Hands:         make([][]Card, s.NumPlayers),
		Played:        make([]*Card, s.NumPlayers),
		Illegal:       append([]bool(nil), s.prevIllegal...),
		Moon:          make([]bool, s.NumPlayers),
		WasFirstTrick: s.prevWasFirstTrick,
		TrickWinner:   s.prevWinner,
		MaxPenalty:    MaxPenalty,
	}

	for i := 0; i < s.NumPlayers; i++ {
		if s.prevHands[i] != nil {
			v.Hands[i] = append([]Card(nil), s.prevHands[i]...)
		}
		if s.prevPlayed[i] != nil {
			card := *s.prevPlayed[i]
			v.Played[i] = &card
		}
		v.Moon[i] = s.HasShotTheMoon(i)
	}

	v.CurrentTrick = append([]PlayedCard(nil), s.current.Cards...)
	if suit, ok := s.current.LeadingSuit(); ok {
		lead := suit
		v.LeadingSuit = &lead
	}
	if s.previous != nil {
		v.PreviousTrick = append([]PlayedCard(nil), s.previous.Cards...)
		if suit, ok := s.previous.LeadingSuit(); ok {
			lead := suit
			v.PreviousLeadingSuit = &lead
		}
	}
	if s.prevPenalty != nil {
		penalty := *s.prevPenalty
		v.TrickPenalty = &penalty
	}
	return v
}
