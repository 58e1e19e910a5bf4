package sav

const (
	Magic          = "FALLOUT SAVE FILE\x00" // includes the terminating NUL
	signatureField = 24                      // Magic plus padding

	playerNameLength  = 32
	saveNameLength    = 30
	mapFilenameLength = 16
	ThumbnailWidth    = 224
	ThumbnailHeight   = 133
	thumbnailLength   = ThumbnailWidth * ThumbnailHeight

	HeaderSize = signatureField +
		4 + // version
		1 + // release type
		playerNameLength +
		saveNameLength +
		3*2 + // save date
		4 + // save time
		3*2 + // game date
		4 + // game ticks
		2 + // elevation
		2 + // map number
		mapFilenameLength +
		thumbnailLength

	MysteryBytesLength = 4 * 44
	MapHeaderSize      = 4 + // version
		mapFilenameLength +
		4*3 + // player position, elevation, orientation
		4 + // local variable count
		4 + // map script id
		4 + // flags
		4 + // darkness
		4 + // global variable count
		4 + // map id
		4 + // ticks
		MysteryBytesLength

	scriptRecordSize = 3 * 4 // id, local variable offset, local variable count

	NoLocalVariables = -1 // local variable offset of a script instance that owns no slots

	TicksPerSecond = 10

	MaxInflatedSize = 64 << 20
)

// gzip member header: ID1, ID2, CM (deflate)
var gzipSignature = []byte{0x1f, 0x8b, 0x08}

const gzipReservedFlags = 0xe0
