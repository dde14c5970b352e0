package glhelpers

// CreateFlags is used when NewContext() to create a helper context.
type CreateFlags int

const (
	// Debug polls the driver error flag after each helper and logs it
	Debug CreateFlags = 1 << 0
	// ValidatePrograms validates every program right after a successful link
	ValidatePrograms CreateFlags = 1 << 1
	// KeepShaders keeps shader objects alive after they are linked into a program
	KeepShaders CreateFlags = 1 << 2
)

// GL enum values used by the helpers. They are declared here so the root
// package does not depend on a particular binding.
const (
	glFALSE = 0
	glTRUE  = 1

	glNO_ERROR = 0

	glFLOAT = 0x1406

	glARRAY_BUFFER = 0x8892

	glSTREAM_DRAW  = 0x88E0
	glSTREAM_READ  = 0x88E1
	glSTREAM_COPY  = 0x88E2
	glSTATIC_DRAW  = 0x88E4
	glSTATIC_READ  = 0x88E5
	glSTATIC_COPY  = 0x88E6
	glDYNAMIC_DRAW = 0x88E8
	glDYNAMIC_READ = 0x88E9
	glDYNAMIC_COPY = 0x88EA

	glFRAGMENT_SHADER        = 0x8B30
	glVERTEX_SHADER          = 0x8B31
	glGEOMETRY_SHADER        = 0x8DD9
	glTESS_EVALUATION_SHADER = 0x8E87
	glTESS_CONTROL_SHADER    = 0x8E88
	glCOMPUTE_SHADER         = 0x91B9

	glCOMPILE_STATUS  = 0x8B81
	glLINK_STATUS     = 0x8B82
	glVALIDATE_STATUS = 0x8B83
	glINFO_LOG_LENGTH = 0x8B84
)

