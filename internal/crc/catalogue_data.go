package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Catalogue data.
 *
 *		A representative subset of the reveng CRC catalogue,
 *		covering the widths this package is exercised against
 *		plus the other common named CRCs a caller is likely to
 *		ask for by name. Entries are sorted ascending by Name
 *		(plain Go string ordering, which Lookup's binary search
 *		depends on) — verify this invariant before adding an
 *		entry rather than appending and re-sorting by hand.
 *
 *------------------------------------------------------------------*/

var catalogue = []Template{
	{Name: "crc-15-can", Configuration: Configuration{Width: 15, Poly: 0x4599, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}},
	{Name: "crc-16", Configuration: Configuration{Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000}},
	{Name: "crc-16-ccitt-false", Configuration: Configuration{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000}},
	{Name: "crc-16-darc", Configuration: Configuration{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFF}},
	{Name: "crc-16-dnp", Configuration: Configuration{Width: 16, Poly: 0x3D65, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0xFFFF}},
	{Name: "crc-16-genibus", Configuration: Configuration{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFF}},
	{Name: "crc-16-kermit", Configuration: Configuration{Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000}},
	{Name: "crc-16-maxim", Configuration: Configuration{Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0xFFFF}},
	{Name: "crc-16-modbus", Configuration: Configuration{Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0x0000}},
	{Name: "crc-16-usb", Configuration: Configuration{Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF}},
	{Name: "crc-16-xmodem", Configuration: Configuration{Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}},
	{Name: "crc-24", Configuration: Configuration{Width: 24, Poly: 0x864CFB, Init: 0xB704CE, RefIn: false, RefOut: false, XorOut: 0x000000}},
	{Name: "crc-32", Configuration: Configuration{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}},
	{Name: "crc-32-bzip2", Configuration: Configuration{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFF}},
	{Name: "crc-32-jamcrc", Configuration: Configuration{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000}},
	{Name: "crc-32-mpeg-2", Configuration: Configuration{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0x00000000}},
	{Name: "crc-32-posix", Configuration: Configuration{Width: 32, Poly: 0x04C11DB7, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFF}},
	{Name: "crc-32c", Configuration: Configuration{Width: 32, Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}},
	{Name: "crc-4-itu", Configuration: Configuration{Width: 4, Poly: 0x3, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0}},
	{Name: "crc-5-epc", Configuration: Configuration{Width: 5, Poly: 0x09, Init: 0x09, RefIn: false, RefOut: false, XorOut: 0x00}},
	{Name: "crc-5-itu", Configuration: Configuration{Width: 5, Poly: 0x15, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}},
	{Name: "crc-5-usb", Configuration: Configuration{Width: 5, Poly: 0x05, Init: 0x1F, RefIn: true, RefOut: true, XorOut: 0x1F}},
	{Name: "crc-6-itu", Configuration: Configuration{Width: 6, Poly: 0x03, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}},
	{Name: "crc-64-we", Configuration: Configuration{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFFFFFFFFFF}},
	{Name: "crc-64-xz", Configuration: Configuration{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}},
	{Name: "crc-7", Configuration: Configuration{Width: 7, Poly: 0x09, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}},
	{Name: "crc-8", Configuration: Configuration{Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}},
	{Name: "crc-8-autosar", Configuration: Configuration{Width: 8, Poly: 0x2F, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0xFF}},
	{Name: "crc-8-bluetooth", Configuration: Configuration{Width: 8, Poly: 0xA7, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}},
	{Name: "crc-8-darc", Configuration: Configuration{Width: 8, Poly: 0x39, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}},
	{Name: "crc-8-smbus", Configuration: Configuration{Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}},
	{Name: "crc3-gsm", Configuration: Configuration{Width: 3, Poly: 0x3, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x7}},
}
