package app

import (
	"context"
	"fmt"

	"github.com/spotgrab/spotify-grabber/internal/codec"
	"github.com/spotgrab/spotify-grabber/internal/logger"
)

// ConvertDirection selects which way an identifier is converted.
type ConvertDirection uint8

// Enum values for ConvertDirection.
const (
	// ConvertAuto detects the direction from each identifier's shape.
	ConvertAuto ConvertDirection = iota
	// ConvertToTrackID converts a hex GID into a base62 track ID.
	ConvertToTrackID
	// ConvertToGID converts a base62 track ID into a hex GID.
	ConvertToGID
)

// gidHexLength is the canonical length of a GID rendered as hex.
const gidHexLength = 32

// ExecuteConvertCommand converts each argument between the hex GID and the
// base62 track ID representation and prints the results to stdout.
func ExecuteConvertCommand(ctx context.Context, direction ConvertDirection, args []string) {
	for _, arg := range args {
		argDirection := direction
		if argDirection == ConvertAuto {
			argDirection = detectDirection(arg)
		}

		var (
			converted string
			err       error
		)

		switch argDirection {
		case ConvertToGID:
			converted, err = codec.TrackIDToGID(arg)
		case ConvertToTrackID, ConvertAuto:
			converted, err = codec.GIDToTrackID(arg)
		}

		if err != nil {
			logger.Fatalf(ctx, "Failed to convert '%s': %v", arg, err)
		}

		fmt.Println(converted)
	}
}

// detectDirection infers the conversion direction from the identifier's
// shape. The two encodings cannot collide: a GID is exactly 32 hex
// characters while a track ID is at most 22 base62 characters.
func detectDirection(arg string) ConvertDirection {
	if len(arg) == gidHexLength && isHex(arg) {
		return ConvertToTrackID
	}

	return ConvertToGID
}

func isHex(s string) bool {
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}

	return true
}
