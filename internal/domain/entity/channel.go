package entity

import (
	"strconv"
	"unicode/utf16"
)

const (
	// DefaultChannelID is used while no custom notification sound is set.
	DefaultChannelID = "fluxer"

	// BackgroundChannelID carries the silent "still running" notification.
	BackgroundChannelID = "fluxer_bg"

	channelIDPrefix = "fluxer_"
)

// NotificationChannel is a named delivery category. Its sound is bound at
// creation and cannot change afterwards, so a new sound means a new channel.
type NotificationChannel struct {
	ID          string
	DisplayName string
	Description string
	SoundRef    string // empty means the platform default sound
	Silent      bool
	CreatedAt   int64
}

// ChannelIDForSound derives the channel identifier for a sound preference.
// The same sound reference always yields the same identifier.
func ChannelIDForSound(soundRef string) string {
	if soundRef == "" {
		return DefaultChannelID
	}
	return channelIDPrefix + strconv.FormatInt(int64(stringHash(soundRef)&0x7FFFFFFF), 10)
}

// stringHash is the 31-multiplier hash over UTF-16 code units. Channels
// created by earlier releases are named with it, so it must not change.
func stringHash(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(unit)
	}
	return h
}
