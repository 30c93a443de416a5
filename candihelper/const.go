package candihelper

const (
	// Version of this service
	Version = "v0.4.0"

	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"
	// DateFormat layout used for order day keys
	DateFormat = "2006-01-02"

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"

	// HeaderAuthorization const
	HeaderAuthorization = "Authorization"
	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderOrigin const
	HeaderOrigin = "Origin"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"

	// Byte ...
	Byte uint64 = 1
	// KByte ...
	KByte = Byte * 1024
	// MByte ...
	MByte = KByte * 1024
)
