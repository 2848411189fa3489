package flash25

// Opcode is a single-byte 25-series command code.
type Opcode byte

// Command set, per [N25Q32] Table 16 and [W25Q128] Instruction Set Table 1.
const (
	OpcodeReadJedecID      Opcode = 0x9F
	OpcodeReadStatus       Opcode = 0x05
	OpcodeWriteEnable      Opcode = 0x06
	OpcodeWriteDisable     Opcode = 0x04 // issued only by Flash.WriteDisable, never by the erase/write paths
	OpcodeRead             Opcode = 0x03
	OpcodePageProgram      Opcode = 0x02
	OpcodeSectorErase      Opcode = 0x20
	OpcodeBlockErase64KB   Opcode = 0xD8
	OpcodeChipErase        Opcode = 0xC7
	OpcodePowerDown        Opcode = 0xB9
	OpcodeReleasePowerDown Opcode = 0xAB
	OpcodeDieSelect        Opcode = 0xC2 // stacked-die packages (W25M) only
)

func (o Opcode) String() string {
	switch o {
	case OpcodeReadJedecID:
		return "ReadJedecID"
	case OpcodeReadStatus:
		return "ReadStatus"
	case OpcodeWriteEnable:
		return "WriteEnable"
	case OpcodeWriteDisable:
		return "WriteDisable"
	case OpcodeRead:
		return "Read"
	case OpcodePageProgram:
		return "PageProgram"
	case OpcodeSectorErase:
		return "SectorErase"
	case OpcodeBlockErase64KB:
		return "BlockErase64KB"
	case OpcodeChipErase:
		return "ChipErase"
	case OpcodePowerDown:
		return "PowerDown"
	case OpcodeReleasePowerDown:
		return "ReleasePowerDown"
	case OpcodeDieSelect:
		return "DieSelect"
	default:
		return "Opcode(unknown)"
	}
}
