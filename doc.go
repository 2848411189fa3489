// Package flash25 drives 25-series SPI flash and EEPROM chips: byte-addressable
// reads, page-program writes, sector/chip erase, and JEDEC identification.
//
// The package depends on nothing beyond the standard library. A caller
// supplies a Transport and a ChipSelect (thin interfaces over whatever SPI
// master and GPIO line the host platform exposes) and gets back a Flash
// that implements the opcode framing, chip-select discipline, and
// write-enable/BUSY bookkeeping the chips require.
//
// # References
//
// Flash command sets:
//   - [N25Q32]: Micron N25Q032A Serial NOR Flash Memory, Table 16 Command Set
//   - [W25Q128]: Winbond W25Q128JV-DTR, 8.1.2 Instruction Set Table 1
//   - [FM25V02A]: Cypress/Ramtron FM25V02A, JEDEC ID with continuation prefix
package flash25
