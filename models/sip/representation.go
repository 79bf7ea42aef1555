package sip

import (
	"encoding/json"
	"fmt"

	"github.com/hetarchief/aip-services/constants"
)

// Representation is one of the closed {digital, carrier} variants. The wire
// format carries an explicit kind discriminant; exactly one of the payload
// fields is set after decoding.
type Representation struct {
	Kind    string                 `json:"kind"`
	Digital *DigitalRepresentation `json:"digital,omitempty"`
	Carrier *CarrierRepresentation `json:"carrier,omitempty"`
}

func (r *Representation) UnmarshalJSON(data []byte) error {
	type alias Representation
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	switch a.Kind {
	case constants.RepresentationDigital:
		if a.Digital == nil {
			return fmt.Errorf("representation of kind %s has no digital payload", a.Kind)
		}
	case constants.RepresentationCarrier:
		if a.Carrier == nil {
			return fmt.Errorf("representation of kind %s has no carrier payload", a.Kind)
		}
	default:
		return fmt.Errorf("unknown representation kind %q", a.Kind)
	}
	*r = Representation(a)
	return nil
}

// DigitalRepresentation groups the stored files of one digital copy.
type DigitalRepresentation struct {
	ID       string  `json:"id"`
	Includes []*File `json:"includes"`
}

// CarrierRepresentation groups the physical carriers of one analog copy.
type CarrierRepresentation struct {
	ID                   string             `json:"id"`
	StoredAt             []*PhysicalCarrier `json:"stored_at"`
	HasMissingAudioReels bool               `json:"has_missing_audio_reels"`
	HasMissingImageReels bool               `json:"has_missing_image_reels"`
}

// ImageReels returns the carriers of the image-reel variant, in source order.
func (r *CarrierRepresentation) ImageReels() []*PhysicalCarrier {
	reels := make([]*PhysicalCarrier, 0)
	for _, carrier := range r.StoredAt {
		if carrier.Kind == constants.CarrierImageReel {
			reels = append(reels, carrier)
		}
	}
	return reels
}

// AudioReels returns the carriers of the audio-reel variant, in source order.
func (r *CarrierRepresentation) AudioReels() []*PhysicalCarrier {
	reels := make([]*PhysicalCarrier, 0)
	for _, carrier := range r.StoredAt {
		if carrier.Kind == constants.CarrierAudioReel {
			reels = append(reels, carrier)
		}
	}
	return reels
}

// File is a stored digital file with its fixity and source location.
type File struct {
	ID           string           `json:"id"`
	Size         int64            `json:"size"`
	Fixity       *Fixity          `json:"fixity,omitempty"`
	StoredAt     *StorageLocation `json:"stored_at,omitempty"`
	OriginalName string           `json:"original_name"`
	Format       string           `json:"format,omitempty"`
}

// Fixity asserts file integrity. Type is a cryptographic hash function URI
// whose last path segment names the algorithm.
type Fixity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StorageLocation holds the source path of a file inside the unpacked bag.
type StorageLocation struct {
	FilePath string `json:"file_path"`
}

// Captioning records caption presence on a carrier.
type Captioning struct {
	Kind       string   `json:"kind"` // open or closed
	InLanguage []string `json:"in_language"`
}

// PhysicalCarrier is one of the closed {image_reel, audio_reel, carrier}
// variants. The shared fields cover all variants; decoders reject unknown
// kinds.
type PhysicalCarrier struct {
	Kind                 string       `json:"kind"`
	Identifier           string       `json:"identifier"`
	Medium               string       `json:"medium,omitempty"`
	Material             string       `json:"material,omitempty"`
	StockType            string       `json:"stock_type,omitempty"`
	AspectRatio          string       `json:"aspect_ratio,omitempty"`
	Brand                string       `json:"brand,omitempty"`
	ColoringType         []string     `json:"coloring_type,omitempty"`
	Captioning           []Captioning `json:"has_captioning,omitempty"`
	PreservationProblems []string     `json:"preservation_problems,omitempty"`
}

func (c *PhysicalCarrier) UnmarshalJSON(data []byte) error {
	type alias PhysicalCarrier
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	switch a.Kind {
	case constants.CarrierImageReel, constants.CarrierAudioReel, constants.CarrierGeneric:
		*c = PhysicalCarrier(a)
		return nil
	}
	return fmt.Errorf("unknown carrier kind %q", a.Kind)
}
