package fec

import "github.com/pd0mz/go-qc16/bit"

// Systematic quasi-cyclic (16, 8, 5) code. The parity matrix rows are the
// successive left rotations of 0xe8; the matrix is symmetric, so its rows
// and columns are interchangeable and H = [I | P^T] = [I | P].
//
// A codeword is laid out as parity<<8 | data, parity index 0 in bit 15.
var (
	qc16_8_parity = [8]uint8{
		0xe8, 0xd1, 0xa3, 0x47, 0x8e, 0x1d, 0x3a, 0x74,
	}
	qc16_8_h = [8]uint16{
		0x80e8, 0x40d1, 0x20a3, 0x1047, 0x088e, 0x041d, 0x023a, 0x0174,
	}
	// Coset leaders of weight <= 2, indexed by syndrome. Syndromes that need
	// three or more flipped bits are left zero and the codeword passes
	// through uncorrected. See BuildCorrectionTable.
	qc16_8_table = [256]uint16{
		0x0000, 0x0100, 0x0200, 0x0300, 0x0400, 0x0500, 0x0600, 0x4010,
		0x0800, 0x0900, 0x0a00, 0x0000, 0x0c00, 0x1004, 0x8008, 0x0000,
		0x1000, 0x1100, 0x1200, 0x0000, 0x1400, 0x0804, 0x0000, 0x0000,
		0x1800, 0x0404, 0x2002, 0x0000, 0x0104, 0x0004, 0x0000, 0x0204,
		0x2000, 0x2100, 0x2200, 0x8020, 0x2400, 0x0000, 0x0000, 0x0006,
		0x2800, 0x0000, 0x1002, 0x0000, 0x0000, 0x0028, 0x0000, 0x0000,
		0x3000, 0x0000, 0x0802, 0x0011, 0x4001, 0x0000, 0x0000, 0x0000,
		0x0202, 0x00c0, 0x0002, 0x0102, 0x0000, 0x2004, 0x0402, 0x0000,
		0x4000, 0x4100, 0x4200, 0x0410, 0x4400, 0x0210, 0x0110, 0x0010,
		0x4800, 0x0000, 0x0000, 0x00a0, 0x0000, 0x0000, 0x0003, 0x0810,
		0x5000, 0x8040, 0x0000, 0x0000, 0x2001, 0x0000, 0x0000, 0x1010,
		0x0000, 0x0000, 0x0014, 0x0000, 0x0000, 0x4004, 0x0000, 0x0048,
		0x6000, 0x0000, 0x0000, 0x0000, 0x1001, 0x0000, 0x0088, 0x2010,
		0x8080, 0x0005, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0401, 0x0000, 0x0060, 0x0000, 0x0001, 0x0101, 0x0201, 0x0000,
		0x0000, 0x0000, 0x4002, 0x0000, 0x0801, 0x0012, 0x0000, 0x0000,
		0x8000, 0x8100, 0x8200, 0x2020, 0x8400, 0x0000, 0x0808, 0x0000,
		0x8800, 0x0000, 0x0408, 0x0000, 0x0208, 0x0000, 0x0008, 0x0108,
		0x9000, 0x4040, 0x0000, 0x000c, 0x0000, 0x0000, 0x0050, 0x0000,
		0x0000, 0x0022, 0x0000, 0x0000, 0x0081, 0x8004, 0x1008, 0x0000,
		0xa000, 0x0220, 0x0120, 0x0020, 0x0000, 0x0041, 0x0000, 0x0420,
		0x4080, 0x0000, 0x0000, 0x0820, 0x0000, 0x0000, 0x2008, 0x0090,
		0x0000, 0x0000, 0x0000, 0x1020, 0x000a, 0x0000, 0x0000, 0x0000,
		0x0000, 0x0000, 0x8002, 0x0000, 0x0000, 0x0000, 0x0024, 0x0000,
		0xc000, 0x1040, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x8010,
		0x2080, 0x0018, 0x0000, 0x0000, 0x0044, 0x0000, 0x4008, 0x0000,
		0x0140, 0x0040, 0x0082, 0x0240, 0x0000, 0x0440, 0x0000, 0x0021,
		0x0000, 0x0840, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0880, 0x0000, 0x0000, 0x4020, 0x0030, 0x0000, 0x0000, 0x0000,
		0x0080, 0x0180, 0x0280, 0x0042, 0x0480, 0x0000, 0x0000, 0x0000,
		0x0000, 0x2040, 0x0000, 0x0000, 0x8001, 0x0084, 0x0000, 0x0000,
		0x1080, 0x0000, 0x0009, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	}
)

// QC16_8_ParityMatrix returns a copy of the 8x8 parity generation matrix;
// row i, bit j (MSB first) selects data bit j for parity bit i.
func QC16_8_ParityMatrix() [8]uint8 { return qc16_8_parity }

// QC16_8_H returns a copy of the systematic parity check matrix.
func QC16_8_H() [8]uint16 { return qc16_8_h }

// QC16_8_CorrectionTable returns a copy of the syndrome to error pattern table.
func QC16_8_CorrectionTable() [256]uint16 { return qc16_8_table }

// QC16_8_Encode encodes a data byte into a 16 bit systematic codeword.
func QC16_8_Encode(data uint8) uint16 {
	return encode(qc16_8_parity, data)
}

// QC16_8_Syndrome computes the syndrome of a received codeword, row 0 of H
// in the most significant bit. A zero syndrome means the parity and data
// halves are consistent.
func QC16_8_Syndrome(codeword uint16) uint8 {
	return Syndrome(qc16_8_h, codeword)
}

// Correct a received codeword in place. Returns the number of bits that were
// flipped and false if the syndrome is nonzero but has no table entry, in
// which case the codeword is left untouched.
func QC16_8_Correct(codeword *uint16) (int, bool) {
	syndrome := QC16_8_Syndrome(*codeword)
	if syndrome == 0 {
		return 0, true
	}
	pattern := qc16_8_table[syndrome]
	if pattern == 0 {
		return 0, false
	}
	*codeword ^= pattern
	return bit.Weight16(pattern), true
}

// QC16_8_Decode returns the corrected data byte of a received codeword. It
// never fails; error patterns the table was not built for are silently
// miscorrected or passed through.
func QC16_8_Decode(codeword uint16) uint8 {
	corrected := codeword ^ qc16_8_table[QC16_8_Syndrome(codeword)]
	return uint8(corrected & 0xff)
}
