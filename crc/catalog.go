package crc

import "sort"

// Catalogue of predefined CRCs. Names and parameters follow the
// widely used CRC RevEng catalogue; each entry is built lazily like
// any other *CRC — listing them here costs nothing but the six-field
// struct literal.
var (
	CRC3GSM  = MustNew(Params{Name: "CRC-3/GSM", Width: 3, Poly: 0x3, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x7})
	CRC3ROHC = MustNew(Params{Name: "CRC-3/ROHC", Width: 3, Poly: 0x3, Init: 0x7, RefIn: true, RefOut: true, XorOut: 0x0})

	CRC4G704       = MustNew(Params{Name: "CRC-4/G-704", Width: 4, Poly: 0x3, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0})
	CRC4Interlaken = MustNew(Params{Name: "CRC-4/INTERLAKEN", Width: 4, Poly: 0x3, Init: 0xf, RefIn: false, RefOut: false, XorOut: 0xf})

	CRC5EPCC1G2 = MustNew(Params{Name: "CRC-5/EPC-C1G2", Width: 5, Poly: 0x09, Init: 0x09, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC5G704    = MustNew(Params{Name: "CRC-5/G-704", Width: 5, Poly: 0x15, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC5USB     = MustNew(Params{Name: "CRC-5/USB", Width: 5, Poly: 0x05, Init: 0x1f, RefIn: true, RefOut: true, XorOut: 0x1f})

	CRC6CDMA2000A = MustNew(Params{Name: "CRC-6/CDMA2000-A", Width: 6, Poly: 0x27, Init: 0x3f, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC6CDMA2000B = MustNew(Params{Name: "CRC-6/CDMA2000-B", Width: 6, Poly: 0x07, Init: 0x3f, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC6DARC      = MustNew(Params{Name: "CRC-6/DARC", Width: 6, Poly: 0x19, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC6G704      = MustNew(Params{Name: "CRC-6/G-704", Width: 6, Poly: 0x03, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC6GSM       = MustNew(Params{Name: "CRC-6/GSM", Width: 6, Poly: 0x2f, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x3f})

	CRC7MMC  = MustNew(Params{Name: "CRC-7/MMC", Width: 7, Poly: 0x09, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC7ROHC = MustNew(Params{Name: "CRC-7/ROHC", Width: 7, Poly: 0x4f, Init: 0x7f, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC7UMTS = MustNew(Params{Name: "CRC-7/UMTS", Width: 7, Poly: 0x45, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})

	CRC8              = MustNew(Params{Name: "CRC-8", Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8AUTOSAR       = MustNew(Params{Name: "CRC-8/AUTOSAR", Width: 8, Poly: 0x2f, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0xff})
	CRC8Bluetooth     = MustNew(Params{Name: "CRC-8/BLUETOOTH", Width: 8, Poly: 0xa7, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC8CDMA2000      = MustNew(Params{Name: "CRC-8/CDMA2000", Width: 8, Poly: 0x9b, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8DARC          = MustNew(Params{Name: "CRC-8/DARC", Width: 8, Poly: 0x39, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC8DVBS2         = MustNew(Params{Name: "CRC-8/DVB-S2", Width: 8, Poly: 0xd5, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8GSMA          = MustNew(Params{Name: "CRC-8/GSM-A", Width: 8, Poly: 0x1d, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8GSMB          = MustNew(Params{Name: "CRC-8/GSM-B", Width: 8, Poly: 0x49, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0xff})
	CRC8Hitag         = MustNew(Params{Name: "CRC-8/HITAG", Width: 8, Poly: 0x1d, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8I4321         = MustNew(Params{Name: "CRC-8/I-432-1", Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x55})
	CRC8ICode         = MustNew(Params{Name: "CRC-8/I-CODE", Width: 8, Poly: 0x1d, Init: 0xfd, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8LTE           = MustNew(Params{Name: "CRC-8/LTE", Width: 8, Poly: 0x9b, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8MaximDOW      = MustNew(Params{Name: "CRC-8/MAXIM-DOW", Width: 8, Poly: 0x31, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC8MifareMAD     = MustNew(Params{Name: "CRC-8/MIFARE-MAD", Width: 8, Poly: 0x1d, Init: 0xc7, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8NRSC5         = MustNew(Params{Name: "CRC-8/NRSC-5", Width: 8, Poly: 0x31, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8OpenSafety    = MustNew(Params{Name: "CRC-8/OPENSAFETY", Width: 8, Poly: 0x2f, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8ROHC          = MustNew(Params{Name: "CRC-8/ROHC", Width: 8, Poly: 0x07, Init: 0xff, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC8SAEJ1850      = MustNew(Params{Name: "CRC-8/SAE-J1850", Width: 8, Poly: 0x1d, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0xff})
	CRC8SMBus         = MustNew(Params{Name: "CRC-8/SMBUS", Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00})
	CRC8Tech3250      = MustNew(Params{Name: "CRC-8/TECH-3250", Width: 8, Poly: 0x1d, Init: 0xff, RefIn: true, RefOut: true, XorOut: 0x00})
	CRC8WCDMA         = MustNew(Params{Name: "CRC-8/WCDMA", Width: 8, Poly: 0x9b, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00})

	CRC10ATM      = MustNew(Params{Name: "CRC-10/ATM", Width: 10, Poly: 0x233, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x000})
	CRC10CDMA2000 = MustNew(Params{Name: "CRC-10/CDMA2000", Width: 10, Poly: 0x3d9, Init: 0x3ff, RefIn: false, RefOut: false, XorOut: 0x000})
	CRC10GSM      = MustNew(Params{Name: "CRC-10/GSM", Width: 10, Poly: 0x175, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x3ff})

	CRC11FlexRay = MustNew(Params{Name: "CRC-11/FLEXRAY", Width: 11, Poly: 0x385, Init: 0x01a, RefIn: false, RefOut: false, XorOut: 0x000})
	CRC11UMTS    = MustNew(Params{Name: "CRC-11/UMTS", Width: 11, Poly: 0x307, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x000})

	CRC12CDMA2000 = MustNew(Params{Name: "CRC-12/CDMA2000", Width: 12, Poly: 0xf13, Init: 0xfff, RefIn: false, RefOut: false, XorOut: 0x000})
	CRC12DECT     = MustNew(Params{Name: "CRC-12/DECT", Width: 12, Poly: 0x80f, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x000})
	CRC12GSM      = MustNew(Params{Name: "CRC-12/GSM", Width: 12, Poly: 0xd31, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0xfff})
	CRC12UMTS     = MustNew(Params{Name: "CRC-12/UMTS", Width: 12, Poly: 0x80f, Init: 0x000, RefIn: false, RefOut: true, XorOut: 0x000})

	CRC13BBC = MustNew(Params{Name: "CRC-13/BBC", Width: 13, Poly: 0x1cf5, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})

	CRC14DARC = MustNew(Params{Name: "CRC-14/DARC", Width: 14, Poly: 0x0805, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC14GSM  = MustNew(Params{Name: "CRC-14/GSM", Width: 14, Poly: 0x202d, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x3fff})

	CRC15CAN      = MustNew(Params{Name: "CRC-15/CAN", Width: 15, Poly: 0x4599, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC15MPT1327  = MustNew(Params{Name: "CRC-15/MPT1327", Width: 15, Poly: 0x6815, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0001})

	CRC16ARC            = MustNew(Params{Name: "CRC-16/ARC", Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16CDMA2000       = MustNew(Params{Name: "CRC-16/CDMA2000", Width: 16, Poly: 0xc867, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16CMS            = MustNew(Params{Name: "CRC-16/CMS", Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16DDS110         = MustNew(Params{Name: "CRC-16/DDS-110", Width: 16, Poly: 0x8005, Init: 0x800d, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16DECTR          = MustNew(Params{Name: "CRC-16/DECT-R", Width: 16, Poly: 0x0589, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0001})
	CRC16DECTX          = MustNew(Params{Name: "CRC-16/DECT-X", Width: 16, Poly: 0x0589, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16DNP            = MustNew(Params{Name: "CRC-16/DNP", Width: 16, Poly: 0x3d65, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0xffff})
	CRC16EN13757        = MustNew(Params{Name: "CRC-16/EN-13757", Width: 16, Poly: 0x3d65, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0xffff})
	CRC16GENIBUS        = MustNew(Params{Name: "CRC-16/GENIBUS", Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0xffff})
	CRC16GSM            = MustNew(Params{Name: "CRC-16/GSM", Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0xffff})
	CRC16IBM3740        = MustNew(Params{Name: "CRC-16/IBM-3740", Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16IBMSDLC        = MustNew(Params{Name: "CRC-16/IBM-SDLC", Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0xffff})
	CRC16ISOIEC144433A  = MustNew(Params{Name: "CRC-16/ISO-IEC-14443-3-A", Width: 16, Poly: 0x1021, Init: 0xc6c6, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16Kermit         = MustNew(Params{Name: "CRC-16/KERMIT", Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16LJ1200         = MustNew(Params{Name: "CRC-16/LJ1200", Width: 16, Poly: 0x6f63, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16M17            = MustNew(Params{Name: "CRC-16/M17", Width: 16, Poly: 0x5935, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16MaximDOW       = MustNew(Params{Name: "CRC-16/MAXIM-DOW", Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0xffff})
	CRC16MCRF4XX        = MustNew(Params{Name: "CRC-16/MCRF4XX", Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16Modbus         = MustNew(Params{Name: "CRC-16/MODBUS", Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16NRSC5          = MustNew(Params{Name: "CRC-16/NRSC-5", Width: 16, Poly: 0x080b, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16OpenSafetyA    = MustNew(Params{Name: "CRC-16/OPENSAFETY-A", Width: 16, Poly: 0x5935, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16OpenSafetyB    = MustNew(Params{Name: "CRC-16/OPENSAFETY-B", Width: 16, Poly: 0x755b, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16Profibus       = MustNew(Params{Name: "CRC-16/PROFIBUS", Width: 16, Poly: 0x1dcf, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0xffff})
	CRC16Riello         = MustNew(Params{Name: "CRC-16/RIELLO", Width: 16, Poly: 0x1021, Init: 0xb2aa, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16SpiFujitsu     = MustNew(Params{Name: "CRC-16/SPI-FUJITSU", Width: 16, Poly: 0x1021, Init: 0x1d0f, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16T10DIF         = MustNew(Params{Name: "CRC-16/T10-DIF", Width: 16, Poly: 0x8bb7, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16Teledisk       = MustNew(Params{Name: "CRC-16/TELEDISK", Width: 16, Poly: 0xa097, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16TMS37157       = MustNew(Params{Name: "CRC-16/TMS37157", Width: 16, Poly: 0x1021, Init: 0x89ec, RefIn: true, RefOut: true, XorOut: 0x0000})
	CRC16UMTS           = MustNew(Params{Name: "CRC-16/UMTS", Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})
	CRC16USB            = MustNew(Params{Name: "CRC-16/USB", Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0xffff})
	CRC16XModem         = MustNew(Params{Name: "CRC-16/XMODEM", Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000})

	CRC17CANFD = MustNew(Params{Name: "CRC-17/CAN-FD", Width: 17, Poly: 0x1685b, Init: 0x00000, RefIn: false, RefOut: false, XorOut: 0x00000})

	CRC21CANFD = MustNew(Params{Name: "CRC-21/CAN-FD", Width: 21, Poly: 0x102899, Init: 0x000000, RefIn: false, RefOut: false, XorOut: 0x000000})

	CRC24BLE         = MustNew(Params{Name: "CRC-24/BLE", Width: 24, Poly: 0x00065b, Init: 0x555555, RefIn: true, RefOut: true, XorOut: 0x000000})
	CRC24FlexRayA    = MustNew(Params{Name: "CRC-24/FLEXRAY-A", Width: 24, Poly: 0x5d6dcb, Init: 0xfedcba, RefIn: false, RefOut: false, XorOut: 0x000000})
	CRC24FlexRayB    = MustNew(Params{Name: "CRC-24/FLEXRAY-B", Width: 24, Poly: 0x5d6dcb, Init: 0xabcdef, RefIn: false, RefOut: false, XorOut: 0x000000})
	CRC24Interlaken  = MustNew(Params{Name: "CRC-24/INTERLAKEN", Width: 24, Poly: 0x328b63, Init: 0xffffff, RefIn: false, RefOut: false, XorOut: 0xffffff})
	CRC24LTEA        = MustNew(Params{Name: "CRC-24/LTE-A", Width: 24, Poly: 0x864cfb, Init: 0x000000, RefIn: false, RefOut: false, XorOut: 0x000000})
	CRC24LTEB        = MustNew(Params{Name: "CRC-24/LTE-B", Width: 24, Poly: 0x800063, Init: 0x000000, RefIn: false, RefOut: false, XorOut: 0x000000})
	CRC24OS9         = MustNew(Params{Name: "CRC-24/OS-9", Width: 24, Poly: 0x800063, Init: 0xffffff, RefIn: false, RefOut: false, XorOut: 0xffffff})

	CRC30CDMA = MustNew(Params{Name: "CRC-30/CDMA", Width: 30, Poly: 0x2030b9c7, Init: 0x3fffffff, RefIn: false, RefOut: false, XorOut: 0x3fffffff})

	CRC31Philips = MustNew(Params{Name: "CRC-31/PHILIPS", Width: 31, Poly: 0x04c11db7, Init: 0x7fffffff, RefIn: false, RefOut: false, XorOut: 0x7fffffff})

	CRC32       = MustNew(Params{Name: "CRC-32/ISO-HDLC", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff})
	CRC32AIXM   = MustNew(Params{Name: "CRC-32/AIXM", Width: 32, Poly: 0x814141ab, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000})
	CRC32AUTOSAR = MustNew(Params{Name: "CRC-32/AUTOSAR", Width: 32, Poly: 0xf4acfb13, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff})
	CRC32Base91D = MustNew(Params{Name: "CRC-32/BASE91-D", Width: 32, Poly: 0xa833982b, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff})
	CRC32BZIP2  = MustNew(Params{Name: "CRC-32/BZIP2", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: false, RefOut: false, XorOut: 0xffffffff})
	CRC32CDROMEDC = MustNew(Params{Name: "CRC-32/CD-ROM-EDC", Width: 32, Poly: 0x8001801b, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000})
	CRC32Cksum  = MustNew(Params{Name: "CRC-32/CKSUM", Width: 32, Poly: 0x04c11db7, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0xffffffff})
	CRC32C      = MustNew(Params{Name: "CRC-32C", Width: 32, Poly: 0x1edc6f41, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff})
	CRC32D      = MustNew(Params{Name: "CRC-32D", Width: 32, Poly: 0xa833982b, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff})
	CRC32JAMCRC = MustNew(Params{Name: "CRC-32/JAMCRC", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0x00000000})
	CRC32MEF    = MustNew(Params{Name: "CRC-32/MEF", Width: 32, Poly: 0x741b8cd7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0x00000000})
	CRC32MPEG2  = MustNew(Params{Name: "CRC-32/MPEG-2", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: false, RefOut: false, XorOut: 0x00000000})
	CRC32Q      = MustNew(Params{Name: "CRC-32Q", Width: 32, Poly: 0x814141ab, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000})
	CRC32XFER   = MustNew(Params{Name: "CRC-32/XFER", Width: 32, Poly: 0x000000af, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000})

	CRC40GSM = MustNew(Params{Name: "CRC-40/GSM", Width: 40, Poly: 0x0004820009, Init: 0x0000000000, RefIn: false, RefOut: false, XorOut: 0xffffffffff})

	CRC64ECMA182 = MustNew(Params{Name: "CRC-64/ECMA-182", Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000})
	CRC64GoISO   = MustNew(Params{Name: "CRC-64/GO-ISO", Width: 64, Poly: 0x000000000000001b, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff})
	CRC64MS      = MustNew(Params{Name: "CRC-64/MS", Width: 64, Poly: 0x259c84cba6426349, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0x0000000000000000})
	CRC64NVME    = MustNew(Params{Name: "CRC-64/NVME", Width: 64, Poly: 0xad93d23594c93659, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff})
	CRC64Redis   = MustNew(Params{Name: "CRC-64/REDIS", Width: 64, Poly: 0xad93d23594c935a9, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000})
	CRC64WE      = MustNew(Params{Name: "CRC-64/WE", Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, RefIn: false, RefOut: false, XorOut: 0xffffffffffffffff})
	CRC64XZ      = MustNew(Params{Name: "CRC-64/XZ", Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff})
)

// catalog maps every entry above to its canonical Name, for ByName.
var catalog = buildCatalog()

func buildCatalog() map[string]*CRC {
	entries := []*CRC{
		CRC3GSM, CRC3ROHC,
		CRC4G704, CRC4Interlaken,
		CRC5EPCC1G2, CRC5G704, CRC5USB,
		CRC6CDMA2000A, CRC6CDMA2000B, CRC6DARC, CRC6G704, CRC6GSM,
		CRC7MMC, CRC7ROHC, CRC7UMTS,
		CRC8, CRC8AUTOSAR, CRC8Bluetooth, CRC8CDMA2000, CRC8DARC, CRC8DVBS2,
		CRC8GSMA, CRC8GSMB, CRC8Hitag, CRC8I4321, CRC8ICode, CRC8LTE,
		CRC8MaximDOW, CRC8MifareMAD, CRC8NRSC5, CRC8OpenSafety, CRC8ROHC,
		CRC8SAEJ1850, CRC8SMBus, CRC8Tech3250, CRC8WCDMA,
		CRC10ATM, CRC10CDMA2000, CRC10GSM,
		CRC11FlexRay, CRC11UMTS,
		CRC12CDMA2000, CRC12DECT, CRC12GSM, CRC12UMTS,
		CRC13BBC,
		CRC14DARC, CRC14GSM,
		CRC15CAN, CRC15MPT1327,
		CRC16ARC, CRC16CDMA2000, CRC16CMS, CRC16DDS110, CRC16DECTR, CRC16DECTX,
		CRC16DNP, CRC16EN13757, CRC16GENIBUS, CRC16GSM, CRC16IBM3740, CRC16IBMSDLC,
		CRC16ISOIEC144433A, CRC16Kermit, CRC16LJ1200, CRC16M17, CRC16MaximDOW,
		CRC16MCRF4XX, CRC16Modbus, CRC16NRSC5, CRC16OpenSafetyA, CRC16OpenSafetyB,
		CRC16Profibus, CRC16Riello, CRC16SpiFujitsu, CRC16T10DIF, CRC16Teledisk,
		CRC16TMS37157, CRC16UMTS, CRC16USB, CRC16XModem,
		CRC17CANFD,
		CRC21CANFD,
		CRC24BLE, CRC24FlexRayA, CRC24FlexRayB, CRC24Interlaken, CRC24LTEA, CRC24LTEB, CRC24OS9,
		CRC30CDMA,
		CRC31Philips,
		CRC32, CRC32AIXM, CRC32AUTOSAR, CRC32Base91D, CRC32BZIP2, CRC32CDROMEDC,
		CRC32Cksum, CRC32C, CRC32D, CRC32JAMCRC, CRC32MEF, CRC32MPEG2, CRC32Q, CRC32XFER,
		CRC40GSM,
		CRC64ECMA182, CRC64GoISO, CRC64MS, CRC64NVME, CRC64Redis, CRC64WE, CRC64XZ,
	}
	m := make(map[string]*CRC, len(entries))
	for _, c := range entries {
		m[c.p.Name] = c
	}
	return m
}

// ByName looks up a catalogue entry by its canonical name (e.g.
// "CRC-32C", "CRC-16/MODBUS"). The lookup is case-sensitive; names
// match the CRC RevEng catalogue exactly.
func ByName(name string) (*CRC, bool) {
	c, ok := catalog[name]
	return c, ok
}

// Names returns every catalogue entry's name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
