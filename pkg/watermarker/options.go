package watermarker

import (
	"path/filepath"
	"strconv"
)

const (
	DefaultColour   = "rgba(0,0,0,0.5)"
	DefaultFontSize = 12
)

// Options tunes how the watermark is drawn. The zero value is valid and
// yields a 12pt half-transparent black watermark in the bottom right
// corner, written next to the input file.
type Options struct {
	// Colour is any ImageMagick colour, e.g. "rgba(255,0,0,0.8)".
	Colour string
	// OutDir is where the watermarked copy is written. Defaults to the
	// directory of the input file.
	OutDir string
	// Position is one of TopLeft, Top, TopRight, Left, Center, Right,
	// BottomLeft, Bottom or BottomRight, matched case-insensitively.
	Position string
	// Rotation is the text angle in degrees, see ParseAngle.
	Rotation string
	FontSize int
}

// Settings are Options after defaults have been applied and values
// resolved into what the renderer expects.
type Settings struct {
	Colour   string
	OutDir   string
	Gravity  string
	Angle    int
	FontSize int
}

// Normalize fills in defaults for inputPath and validates position and
// rotation, in that order.
func (o Options) Normalize(inputPath string) (Settings, error) {
	gravity, err := ResolvePosition(o.Position)
	if err != nil {
		return Settings{}, err
	}

	angle, err := ParseAngle(o.Rotation)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Colour:   o.Colour,
		OutDir:   o.OutDir,
		Gravity:  gravity,
		Angle:    angle,
		FontSize: o.FontSize,
	}
	if s.Colour == "" {
		s.Colour = DefaultColour
	}
	if s.OutDir == "" {
		s.OutDir = filepath.Dir(inputPath)
	}
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	return s, nil
}

// OutputPath is where the watermarked copy of inputPath is written.
// Existing files are overwritten.
func (s Settings) OutputPath(inputPath string) string {
	return s.OutDir + "/watermarked_" + filepath.Base(inputPath)
}

// Validate runs the checks that need neither the filesystem nor the image
// tool: text, input path, position and rotation.
func Validate(inputPath, text string, opts *Options) (Settings, error) {
	if text == "" {
		return Settings{}, newError(ErrNoWatermark, inputPath, nil)
	}
	if inputPath == "" {
		return Settings{}, newError(ErrMissingInputFilePath, "", nil)
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	s, err := o.Normalize(inputPath)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = inputPath
		}
		return Settings{}, err
	}
	return s, nil
}

// BuildConvertArgs returns the convert argument list that draws text onto
// input and writes the result to output.
func BuildConvertArgs(input string, width, height int, s Settings, text, output string) []string {
	return []string{
		input,
		"-size",
		strconv.Itoa(width) + "x" + strconv.Itoa(height),
		"-fill",
		s.Colour,
		"-pointsize",
		strconv.Itoa(s.FontSize),
		"-gravity",
		s.Gravity,
		"-annotate",
		strconv.Itoa(s.Angle),
		text,
		output,
	}
}
