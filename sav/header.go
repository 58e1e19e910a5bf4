package sav

import "fmt"

// Header decodes the SAVE.DAT header at the start of buf and returns the bytes
// that follow it.
func Header(buf []byte) ([]byte, *SaveHeader, error) {
	c := newCursor(buf)
	h := &SaveHeader{}

	magic, err := c.read(len(Magic))
	if err != nil {
		return nil, nil, fmt.Errorf("header: signature: %w", err)
	}
	if string(magic) != Magic {
		return nil, nil, fmt.Errorf("header: %w: %q", ErrInvalidMagic, magic)
	}
	h.Magic = Magic
	if err := c.skip(signatureField - len(Magic)); err != nil {
		return nil, nil, fmt.Errorf("header: signature padding: %w", err)
	}

	h.Version, err = c.readL()
	if err != nil {
		return nil, nil, fmt.Errorf("header: version: %w", err)
	}
	h.ReleaseType, err = c.readB()
	if err != nil {
		return nil, nil, fmt.Errorf("header: release type: %w", err)
	}
	h.PlayerName, err = c.readString(playerNameLength)
	if err != nil {
		return nil, nil, fmt.Errorf("header: player name: %w", err)
	}
	h.SaveName, err = c.readString(saveNameLength)
	if err != nil {
		return nil, nil, fmt.Errorf("header: save name: %w", err)
	}

	for _, f := range []*uint16{&h.SaveDay, &h.SaveMonth, &h.SaveYear} {
		if *f, err = c.readW(); err != nil {
			return nil, nil, fmt.Errorf("header: save date: %w", err)
		}
	}
	h.SaveTime, err = c.readL()
	if err != nil {
		return nil, nil, fmt.Errorf("header: save time: %w", err)
	}
	for _, f := range []*uint16{&h.GameMonth, &h.GameDay, &h.GameYear} {
		if *f, err = c.readW(); err != nil {
			return nil, nil, fmt.Errorf("header: game date: %w", err)
		}
	}
	h.GameTicks, err = c.readL()
	if err != nil {
		return nil, nil, fmt.Errorf("header: game ticks: %w", err)
	}

	h.CurrentElevation, err = c.readW()
	if err != nil {
		return nil, nil, fmt.Errorf("header: elevation: %w", err)
	}
	h.CurrentMap, err = c.readW()
	if err != nil {
		return nil, nil, fmt.Errorf("header: current map: %w", err)
	}
	h.CurrentMapFilename, err = c.readString(mapFilenameLength)
	if err != nil {
		return nil, nil, fmt.Errorf("header: current map filename: %w", err)
	}

	thumbnail, err := c.read(thumbnailLength)
	if err != nil {
		return nil, nil, fmt.Errorf("header: thumbnail: %w", err)
	}
	h.Thumbnail = append([]byte(nil), thumbnail...)

	return c.remaining(), h, nil
}
