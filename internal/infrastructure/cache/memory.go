package cache

import (
	"sync"
	"time"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// MeetingStore is an in-memory cache for fetched meeting details.
// Fireflies transcripts are immutable once recorded, so a short TTL only
// exists to pick up late-arriving summaries.
type MeetingStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*meetingItem
}

type meetingItem struct {
	meeting    *entities.Meeting
	expireTime time.Time
}

// NewMeetingStore creates a meeting cache with the given TTL
func NewMeetingStore(ttl time.Duration) *MeetingStore {
	store := &MeetingStore{
		ttl:   ttl,
		items: make(map[string]*meetingItem),
	}

	// Cleanup goroutine removes expired entries
	go store.cleanupExpired()

	return store
}

// Put stores a meeting under its ID
func (ms *MeetingStore) Put(meeting *entities.Meeting) {
	if meeting == nil || meeting.ID == "" {
		return
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[meeting.ID] = &meetingItem{
		meeting:    meeting,
		expireTime: time.Now().Add(ms.ttl),
	}
}

// Get retrieves a meeting by ID (nil, false if absent or expired)
func (ms *MeetingStore) Get(meetingID string) (*entities.Meeting, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[meetingID]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expireTime) {
		return nil, false
	}
	return item.meeting, true
}

// Delete removes a meeting from the cache
func (ms *MeetingStore) Delete(meetingID string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, meetingID)
}

// cleanupExpired periodically removes expired items
func (ms *MeetingStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
