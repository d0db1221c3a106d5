package subscriber

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/id"
)

const (
	PhoneNumberLength = 10
	EdrpouLength      = 8
	MinAddressLength  = 5
)

// Subscriber is a billed customer identified by a unique phone number.
type Subscriber struct {
	id          uint
	sid         string // sub_xxx
	phoneNumber string
	edrpou      string // Ukrainian company tax code
	address     string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSubscriber creates a new subscriber
func NewSubscriber(phoneNumber, edrpou, address string) (*Subscriber, error) {
	s := &Subscriber{}
	if err := s.apply(phoneNumber, edrpou, address); err != nil {
		return nil, err
	}

	sid, err := id.NewSubscriberID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	s.sid = sid
	s.createdAt = now
	s.updatedAt = now
	return s, nil
}

// ReconstructSubscriber reconstructs a Subscriber from persistence layer
func ReconstructSubscriber(id uint, sid, phoneNumber, edrpou, address string, createdAt, updatedAt time.Time) *Subscriber {
	return &Subscriber{
		id:          id,
		sid:         sid,
		phoneNumber: phoneNumber,
		edrpou:      edrpou,
		address:     address,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces phone number, tax code and address.
func (s *Subscriber) Update(phoneNumber, edrpou, address string) error {
	if err := s.apply(phoneNumber, edrpou, address); err != nil {
		return err
	}
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *Subscriber) apply(phoneNumber, edrpou, address string) error {
	if !isDigits(phoneNumber, PhoneNumberLength) {
		return fmt.Errorf("%w: must be exactly %d digits", ErrInvalidPhoneNumber, PhoneNumberLength)
	}
	if !isDigits(edrpou, EdrpouLength) {
		return fmt.Errorf("%w: must be exactly %d digits", ErrInvalidEdrpou, EdrpouLength)
	}
	address = strings.TrimSpace(address)
	if utf8.RuneCountInString(address) < MinAddressLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrInvalidAddress, MinAddressLength)
	}

	s.phoneNumber = phoneNumber
	s.edrpou = edrpou
	s.address = address
	return nil
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Getters
func (s *Subscriber) ID() uint             { return s.id }
func (s *Subscriber) SID() string          { return s.sid }
func (s *Subscriber) PhoneNumber() string  { return s.phoneNumber }
func (s *Subscriber) Edrpou() string       { return s.edrpou }
func (s *Subscriber) Address() string      { return s.address }
func (s *Subscriber) CreatedAt() time.Time { return s.createdAt }
func (s *Subscriber) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the subscriber ID (only for persistence layer use)
func (s *Subscriber) SetID(id uint) {
	s.id = id
}
