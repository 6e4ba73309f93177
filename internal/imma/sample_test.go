package imma

import "strings"

// sampleCore is a core segment whose fields all re-encode byte for byte.
var sampleCore = strings.Join([]string{
	"1998",      // YR
	" 7",        // MO
	"14",        // DY
	"1800",      // HR
	" 4512",     // LAT
	" 32050",    // LON
	" 1",        // IM
	"2",         // ATTC
	"1",         // TI
	"4",         // LI
	"5",         // DS
	"3",         // VS
	"10",        // NID
	" 5",        // II
	"WDC6920  ", // ID
	"US",        // C1
	"1",         // DI
	"270",       // D
	"4",         // WI
	"125",       // W
	"1",         // VI
	"97",        // VV
	" 2",        // WW
	"2",         // W1
	"10132",     // SLP
	"3",         // A
	" 12",       // PPP
	"7",         // IT
	" 215",      // AT
	"1",         // WBTI
	" 180",      // WBT
	"1",         // DPTI
	" 160",      // DPT
	" 1",        // SI
	" 223",      // SST
	"8",         // N
	"4",         // NH
	"A",         // CL
	"1",         // HI
	"5",         // H
	"6",         // CM
	"3",         // CH
	"27",        // WD
	" 6",        // WP
	" 3",        // WH
	"28",        // SD
	" 8",        // SP
	" 4",        // SH
}, "")

// sampleICOADS is the 61-character payload of an 01 attachment.
var sampleICOADS = strings.Join([]string{
	" ",              // BSI
	"123",            // B10
	"45",             // B1
	"926",            // DCK
	"  3",            // SID
	" 5",             // PT
	" 0",             // DUPS
	"0",              // DUPC
	"0",              // TC
	"0",              // PB
	"1",              // WX
	" ",              // SX
	"  ",             // C2
	"1A2B3C4D5E6F",   // SQZ..DQA
	"1",              // ND
	"000000",         // SF..RF
	"55555555555555", // ZNC..TNC
	" 0",             // QCE
	" ",              // LZ
	"  ",             // QCZ
}, "")

const sampleSupplemental = "99 0" + "1" + "SUPPLEMENTAL DATA 42"

// sampleLine chains core, icoads and supplemental attachments.
var sampleLine = sampleCore + " 165" + sampleICOADS + sampleSupplemental

// withField returns sampleCore with the field starting at offset replaced.
func withField(offset int, text string) string {
	return sampleCore[:offset] + text + sampleCore[offset+len(text):]
}
