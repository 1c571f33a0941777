package media

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"
)

// ID3Tagger writes the title frame of mp3 artifacts.
type ID3Tagger struct{}

func CreateID3Tagger() *ID3Tagger {
	return &ID3Tagger{}
}

func (t *ID3Tagger) TagTitle(path, title string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("ID3Tagger.TagTitle: open: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("ID3Tagger.TagTitle: save: %w", err)
	}
	return nil
}
