package spotify

//go:generate $MOCKGEN -source=id_processor.go -destination=mocks/id_processor_mock.go

import (
	"context"
	"regexp"
	"strings"

	"github.com/spotgrab/spotify-grabber/internal/codec"
	"github.com/spotgrab/spotify-grabber/internal/logger"
	"github.com/spotgrab/spotify-grabber/internal/utils"
)

// IDProcessor defines the interface for turning command-line arguments into track IDs.
type IDProcessor interface {
	// ExtractTrackIDs processes a list of arguments and resolves each into a base62 track ID.
	// Arguments may be share URLs, URIs, bare track IDs, or .txt files listing any of those.
	ExtractTrackIDs(ctx context.Context, args []string) ([]string, error)
}

// IDProcessorImpl implements the IDProcessor interface.
type IDProcessorImpl struct{}

// defaultTextExtension is the file extension that marks an argument as an ID list file.
const defaultTextExtension = ".txt"

// trackIDPatterns match the supported share URL and URI forms;
// the ID named group captures the base62 identifier.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var trackIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`open\.spotify\.com/(?:intl-[a-z]+/)?track/(?<ID>[0-9A-Za-z]+)`),
	regexp.MustCompile(`^spotify:track:(?<ID>[0-9A-Za-z]+)$`),
}

// NewIDProcessor creates and returns a new instance of IDProcessorImpl.
func NewIDProcessor() IDProcessor {
	return &IDProcessorImpl{}
}

// ExtractTrackIDs processes a list of arguments and resolves each into a base62 track ID.
func (p *IDProcessorImpl) ExtractTrackIDs(ctx context.Context, args []string) ([]string, error) {
	flattened, err := p.flattenListFiles(args)
	if err != nil {
		return nil, err
	}

	var (
		seen     = make(map[string]struct{}, len(flattened))
		trackIDs = make([]string, 0, len(flattened))
	)

	for _, arg := range flattened {
		trackID := p.parseTrackID(arg)
		if trackID == "" {
			logger.Warnf(ctx, "Skipping unrecognized argument: %s", arg)

			continue
		}

		if _, ok := seen[trackID]; ok {
			continue
		}

		seen[trackID] = struct{}{}

		trackIDs = append(trackIDs, trackID)
	}

	return trackIDs, nil
}

func (p *IDProcessorImpl) parseTrackID(arg string) string {
	for _, pattern := range trackIDPatterns {
		if trackID := utils.ExtractNamedGroup(pattern, "ID", arg); codec.IsTrackID(trackID) {
			return trackID
		}
	}

	// A bare argument is accepted when it already is a track ID.
	if codec.IsTrackID(arg) {
		return arg
	}

	return ""
}

// flattenListFiles replaces .txt arguments with the unique non-empty lines they contain.
func (p *IDProcessorImpl) flattenListFiles(args []string) ([]string, error) {
	result := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.HasSuffix(arg, defaultTextExtension) {
			result = append(result, arg)

			continue
		}

		lines, err := utils.ReadUniqueLinesFromFile(arg)
		if err != nil {
			return nil, err
		}

		result = append(result, lines...)
	}

	return result, nil
}
