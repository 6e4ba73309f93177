package imma

// Field tables for every supported attachment. Widths, ranges, scales and
// encodings are the wire contract and follow the published IMMA layout.

func init() {
	register(CoreID, "core",
		[]string{
			"YR", "MO", "DY", "HR", "LAT", "LON", "IM", "ATTC",
			"TI", "LI", "DS", "VS", "NID", "II", "ID", "C1", "DI",
			"D", "WI", "W", "VI", "VV", "WW", "W1", "SLP", "A",
			"PPP", "IT", "AT", "WBTI", "WBT", "DPTI", "DPT", "SI",
			"SST", "N", "NH", "CL", "HI", "H", "CM", "CH", "WD",
			"WP", "WH", "SD", "SP", "SH",
		},
		def("YR", 4, rng(1600, 2024), nil, 1, Integer),
		def("MO", 2, rng(1, 12), nil, 1, Integer),
		def("DY", 2, rng(1, 31), nil, 1, Integer),
		def("HR", 4, rng(0, 23.99), nil, 0.01, Integer),
		def("LAT", 5, rng(-90, 90), nil, 0.01, Integer),
		def("LON", 6, rng(0, 359.99), rng(-179.99, 180), 0.01, Integer),
		def("IM", 2, rng(0, 99), nil, 1, Integer),
		def("ATTC", 1, rng(0, 9), nil, 1, Integer),
		def("TI", 1, rng(0, 3), nil, 1, Integer),
		def("LI", 1, rng(0, 6), nil, 1, Integer),
		def("DS", 1, rng(0, 9), nil, 1, Integer),
		def("VS", 1, rng(0, 9), nil, 1, Integer),
		def("NID", 2, rng(0, 99), nil, 1, Integer),
		def("II", 2, rng(0, 10), nil, 1, Integer),
		def("ID", 9, rng(32, 126), nil, 0, Character),
		def("C1", 2, rng(48, 57), rng(65, 90), 0, Character),
		def("DI", 1, rng(0, 6), nil, 1, Integer),
		def("D", 3, rng(1, 362), nil, 1, Integer),
		def("WI", 1, rng(0, 8), nil, 1, Integer),
		def("W", 3, rng(0, 99.9), nil, 0.1, Integer),
		def("VI", 1, rng(0, 2), nil, 1, Integer),
		def("VV", 2, rng(90, 99), nil, 1, Integer),
		def("WW", 2, rng(0, 99), nil, 1, Integer),
		def("W1", 1, rng(0, 9), nil, 1, Integer),
		def("SLP", 5, rng(870, 1074.6), nil, 0.1, Integer),
		def("A", 1, rng(0, 8), nil, 1, Integer),
		def("PPP", 3, rng(0, 51), nil, 0.1, Integer),
		def("IT", 1, rng(0, 9), nil, 1, Integer),
		def("AT", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("WBTI", 1, rng(0, 3), nil, 1, Integer),
		def("WBT", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("DPTI", 1, rng(0, 3), nil, 1, Integer),
		def("DPT", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("SI", 2, rng(0, 12), nil, 1, Integer),
		def("SST", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("N", 1, rng(0, 9), nil, 1, Integer),
		def("NH", 1, rng(0, 9), nil, 1, Integer),
		def("CL", 1, rng(0, 10), nil, 1, Base36),
		def("HI", 1, rng(0, 1), nil, 1, Integer),
		def("H", 1, rng(0, 10), nil, 1, Base36),
		def("CM", 1, rng(0, 10), nil, 1, Base36),
		def("CH", 1, rng(0, 10), nil, 1, Base36),
		def("WD", 2, rng(0, 38), nil, 1, Integer),
		def("WP", 2, rng(0, 30), rng(99, 99), 1, Integer),
		def("WH", 2, rng(0, 99), nil, 1, Integer),
		def("SD", 2, rng(0, 38), nil, 1, Integer),
		def("SP", 2, rng(0, 30), rng(99, 99), 1, Integer),
		def("SH", 2, rng(0, 99), nil, 1, Integer),
	)

	register(1, "icoads",
		[]string{
			"BSI", "B10", "B1", "DCK", "SID", "PT", "DUPS", "DUPC", "TC",
			"PB", "WX", "SX", "C2", "SQZ", "SQA", "AQZ", "AQA", "UQZ", "UQA",
			"VQZ", "VQA", "PQZ", "PQA", "DQZ", "DQA", "ND", "SF", "AF",
			"UF", "VF", "PF", "RF", "ZNC", "WNC", "BNC", "XNC", "YNC",
			"PNC", "ANC", "GNC", "DNC", "SNC", "CNC", "ENC", "FNC", "TNC",
			"QCE", "LZ", "QCZ",
		},
		def("BSI", 1, nil, nil, 1, Integer),
		def("B10", 3, rng(1, 648), nil, 1, Integer),
		def("B1", 2, rng(0, 99), nil, 1, Integer),
		def("DCK", 3, rng(0, 999), nil, 1, Integer),
		def("SID", 3, rng(0, 999), nil, 1, Integer),
		def("PT", 2, rng(0, 15), nil, 1, Integer),
		def("DUPS", 2, rng(0, 14), nil, 1, Integer),
		def("DUPC", 1, rng(0, 2), nil, 1, Integer),
		def("TC", 1, rng(0, 1), nil, 1, Integer),
		def("PB", 1, rng(0, 2), nil, 1, Integer),
		def("WX", 1, rng(1, 1), nil, 1, Integer),
		def("SX", 1, rng(1, 1), nil, 1, Integer),
		def("C2", 2, rng(0, 40), nil, 1, Integer),
		def("SQZ", 1, rng(1, 35), nil, 1, Base36),
		def("SQA", 1, rng(1, 21), nil, 1, Base36),
		def("AQZ", 1, rng(1, 35), nil, 1, Base36),
		def("AQA", 1, rng(1, 21), nil, 1, Base36),
		def("UQZ", 1, rng(1, 35), nil, 1, Base36),
		def("UQA", 1, rng(1, 21), nil, 1, Base36),
		def("VQZ", 1, rng(1, 35), nil, 1, Base36),
		def("VQA", 1, rng(1, 21), nil, 1, Base36),
		def("PQZ", 1, rng(1, 35), nil, 1, Base36),
		def("PQA", 1, rng(1, 21), nil, 1, Base36),
		def("DQZ", 1, rng(1, 35), nil, 1, Base36),
		def("DQA", 1, rng(1, 21), nil, 1, Base36),
		def("ND", 1, rng(1, 2), nil, 1, Integer),
		def("SF", 1, rng(1, 15), nil, 1, Base36),
		def("AF", 1, rng(1, 15), nil, 1, Base36),
		def("UF", 1, rng(1, 15), nil, 1, Base36),
		def("VF", 1, rng(1, 15), nil, 1, Base36),
		def("PF", 1, rng(1, 15), nil, 1, Base36),
		def("RF", 1, rng(1, 15), nil, 1, Base36),
		def("ZNC", 1, rng(1, 10), nil, 1, Base36),
		def("WNC", 1, rng(1, 10), nil, 1, Base36),
		def("BNC", 1, rng(1, 10), nil, 1, Base36),
		def("XNC", 1, rng(1, 10), nil, 1, Base36),
		def("YNC", 1, rng(1, 10), nil, 1, Base36),
		def("PNC", 1, rng(1, 10), nil, 1, Base36),
		def("ANC", 1, rng(1, 10), nil, 1, Base36),
		def("GNC", 1, rng(1, 10), nil, 1, Base36),
		def("DNC", 1, rng(1, 10), nil, 1, Base36),
		def("SNC", 1, rng(1, 10), nil, 1, Base36),
		def("CNC", 1, rng(1, 10), nil, 1, Base36),
		def("ENC", 1, rng(1, 10), nil, 1, Base36),
		def("FNC", 1, rng(1, 10), nil, 1, Base36),
		def("TNC", 1, rng(1, 10), nil, 1, Base36),
		def("QCE", 2, rng(0, 63), nil, 1, Integer),
		def("LZ", 1, rng(1, 1), nil, 1, Integer),
		def("QCZ", 2, rng(0, 31), nil, 1, Integer),
	)

	register(2, "immt2",
		[]string{
			"OS", "OP", "FM", "IX", "W2", "SGN", "SGT", "SGH",
			"WMI", "SD2", "SP2", "SH2", "IS", "ES", "RS", "IC1",
			"IC2", "IC3", "IC4", "IC5", "IR", "RRR", "TR", "QCI",
			"QI1", "QI2", "QI3", "QI4", "QI5", "QI6", "QI7", "QI8",
			"QI9", "QI10", "QI11", "QI12", "QI13", "QI14", "QI15",
			"QI16", "QI17", "QI18", "QI19", "QI20", "QI21", "HDG",
			"COG", "SOG", "SLL", "SLHH", "RWD", "RWS",
		},
		def("OS", 1, rng(0, 6), nil, 1, Integer),
		def("OP", 1, rng(0, 9), nil, 1, Integer),
		def("FM", 2, rng(0, 8), nil, 1, Integer),
		def("IX", 1, rng(1, 7), nil, 1, Integer),
		def("W2", 1, rng(0, 9), nil, 1, Integer),
		def("SGN", 1, rng(0, 9), nil, 1, Integer),
		def("SGT", 1, rng(0, 10), nil, 1, Base36),
		def("SGH", 2, rng(0, 50), rng(56, 99), 1, Integer),
		def("WMI", 1, rng(0, 9), nil, 1, Integer),
		def("SD2", 2, rng(0, 38), nil, 1, Integer),
		def("SP2", 2, rng(0, 30), rng(99, 99), 1, Integer),
		def("SH2", 2, rng(0, 99), nil, 1, Integer),
		def("IS", 1, rng(1, 5), nil, 1, Integer),
		def("ES", 2, rng(0, 99), nil, 1, Integer),
		def("RS", 1, rng(0, 4), nil, 1, Integer),
		def("IC1", 1, rng(0, 10), nil, 1, Base36),
		def("IC2", 1, rng(0, 10), nil, 1, Base36),
		def("IC3", 1, rng(0, 10), nil, 1, Base36),
		def("IC4", 1, rng(0, 10), nil, 1, Base36),
		def("IC5", 1, rng(0, 10), nil, 1, Base36),
		def("IR", 1, rng(0, 4), nil, 1, Integer),
		def("RRR", 3, rng(0, 999), nil, 1, Integer),
		def("TR", 1, rng(1, 9), nil, 1, Integer),
		def("QCI", 1, rng(0, 9), nil, 1, Integer),
		def("QI1", 1, rng(0, 9), nil, 1, Integer),
		def("QI2", 1, rng(0, 9), nil, 1, Integer),
		def("QI3", 1, rng(0, 9), nil, 1, Integer),
		def("QI4", 1, rng(0, 9), nil, 1, Integer),
		def("QI5", 1, rng(0, 9), nil, 1, Integer),
		def("QI6", 1, rng(0, 9), nil, 1, Integer),
		def("QI7", 1, rng(0, 9), nil, 1, Integer),
		def("QI8", 1, rng(0, 9), nil, 1, Integer),
		def("QI9", 1, rng(0, 9), nil, 1, Integer),
		def("QI10", 1, rng(0, 9), nil, 1, Integer),
		def("QI11", 1, rng(0, 9), nil, 1, Integer),
		def("QI12", 1, rng(0, 9), nil, 1, Integer),
		def("QI13", 1, rng(0, 9), nil, 1, Integer),
		def("QI14", 1, rng(0, 9), nil, 1, Integer),
		def("QI15", 1, rng(0, 9), nil, 1, Integer),
		def("QI16", 1, rng(0, 9), nil, 1, Integer),
		def("QI17", 1, rng(0, 9), nil, 1, Integer),
		def("QI18", 1, rng(0, 9), nil, 1, Integer),
		def("QI19", 1, rng(0, 9), nil, 1, Integer),
		def("QI20", 1, rng(0, 9), nil, 1, Integer),
		def("QI21", 1, rng(0, 9), nil, 1, Integer),
		def("HDG", 3, rng(0, 360), nil, 1, Integer),
		def("COG", 3, rng(0, 360), nil, 1, Integer),
		def("SOG", 2, rng(0, 99), nil, 1, Integer),
		def("SLL", 2, rng(0, 99), nil, 1, Integer),
		def("SLHH", 3, rng(-99, 99), nil, 1, Integer),
		def("RWD", 3, rng(1, 362), nil, 1, Integer),
		def("RWS", 3, rng(0, 99.9), nil, 0.1, Integer),
	)

	// Legacy model quality control layout, superseded by 06.
	register(3, "mqc",
		[]string{
			"CCCC", "BUID", "BMP", "BSWU", "SWU", "BSWV", "SWV", "BSAT",
			"BSRH", "SRH", "SIX", "BSST", "MST", "MSH", "BY", "BM", "BD",
			"BH", "BFL",
		},
		def("CCCC", 4, rng(65, 90), nil, 0, Character),
		def("BUID", 6, rng(48, 57), rng(65, 90), 0, Character),
		def("BMP", 5, rng(870, 1074.6), nil, 0.1, Integer),
		def("BSWU", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("SWU", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("BSWV", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("SWV", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("BSAT", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("BSRH", 3, rng(0, 100), nil, 1, Integer),
		def("SRH", 3, rng(0, 100), nil, 1, Integer),
		def("SIX", 1, rng(2, 3), nil, 1, Integer),
		def("BSST", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("MST", 1, rng(0, 9), nil, 1, Integer),
		def("MSH", 3, rng(0, 999), nil, 1, Integer),
		def("BY", 4, rng(0, 9999), nil, 1, Integer),
		def("BM", 2, rng(1, 12), nil, 1, Integer),
		def("BD", 2, rng(1, 31), nil, 1, Integer),
		def("BH", 2, rng(0, 23), nil, 1, Integer),
		def("BFL", 2, rng(0, 99), nil, 1, Integer),
	)

	register(4, "metadata",
		[]string{
			"C1M", "OPM", "KOV", "COR", "TOB", "TOT", "EOT", "LOT", "TOH", "EOH",
			"SIM", "LOV", "DOS", "HOP", "HOT", "HOB", "HOA", "SMF", "SME", "SMV",
		},
		def("C1M", 2, rng(65, 90), nil, 0, Character),
		def("OPM", 2, rng(0, 99), nil, 1, Integer),
		def("KOV", 2, rng(32, 126), nil, 0, Character),
		def("COR", 2, rng(65, 90), nil, 0, Character),
		def("TOB", 3, rng(32, 126), nil, 0, Character),
		def("TOT", 3, rng(32, 126), nil, 0, Character),
		def("EOT", 2, rng(32, 126), nil, 0, Character),
		def("LOT", 2, rng(32, 126), nil, 0, Character),
		def("TOH", 1, rng(32, 126), nil, 0, Character),
		def("EOH", 2, rng(32, 126), nil, 0, Character),
		def("SIM", 3, rng(32, 126), nil, 0, Character),
		def("LOV", 3, rng(0, 999), nil, 1, Integer),
		def("DOS", 2, rng(0, 99), nil, 1, Integer),
		def("HOP", 3, rng(0, 999), nil, 1, Integer),
		def("HOT", 3, rng(0, 999), nil, 1, Integer),
		def("HOB", 3, rng(0, 999), nil, 1, Integer),
		def("HOA", 3, rng(0, 999), nil, 1, Integer),
		def("SMF", 5, rng(0, 99999), nil, 1, Integer),
		def("SME", 5, rng(0, 99999), nil, 1, Integer),
		def("SMV", 2, rng(0, 99), nil, 1, Integer),
	)

	register(5, "historical",
		[]string{"WFI", "WF", "XWI", "XW", "XDI", "XD", "SLPI", "TAI", "TA", "XNI", "XN"},
		def("WFI", 1, nil, nil, 0, Integer),
		def("WF", 2, nil, nil, 0, Integer),
		def("XWI", 1, nil, nil, 0, Integer),
		def("XW", 3, nil, nil, 0.1, Integer),
		def("XDI", 1, nil, nil, 0, Integer),
		def("XD", 2, nil, nil, 0, Integer),
		def("SLPI", 1, nil, nil, 0, Integer),
		def("TAI", 1, nil, nil, 0, Integer),
		def("TA", 4, nil, nil, 0, Integer),
		def("XNI", 1, nil, nil, 0, Integer),
		def("XN", 2, nil, nil, 0, Integer),
	)

	// FBSRC is defined in the 06 table but is not part of the on-disc layout.
	register(6, "mqc",
		[]string{
			"CCCC", "BUID", "BMP", "BSWU", "SWU", "BSWV", "SWV", "BSAT",
			"BSRH", "SRH", "SIX", "BSST", "MST", "MSH", "BY", "BM", "BD",
			"BH", "BFL",
		},
		def("CCCC", 4, rng(65, 90), nil, 0, Character),
		def("BUID", 6, rng(48, 57), rng(65, 90), 0, Character),
		def("FBSRC", 1, rng(0, 0), nil, 1, Integer),
		def("BMP", 5, rng(870, 1074.6), nil, 0.1, Integer),
		def("BSWU", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("SWU", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("BSWV", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("SWV", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("BSAT", 4, rng(-99.9, 99.9), nil, 0.1, Integer),
		def("BSRH", 3, rng(0, 100), nil, 1, Integer),
		def("SRH", 3, rng(0, 100), nil, 1, Integer),
		def("SIX", 1, rng(2, 3), nil, 1, Integer),
		def("BSST", 5, rng(-99.9, 99.9), nil, 0.01, Integer),
		def("MST", 1, rng(0, 9), nil, 1, Integer),
		def("MSH", 4, rng(-999, 9999), nil, 1, Integer),
		def("BY", 4, rng(0, 9999), nil, 1, Integer),
		def("BM", 2, rng(1, 12), nil, 1, Integer),
		def("BD", 2, rng(1, 31), nil, 1, Integer),
		def("BH", 2, rng(0, 23), nil, 1, Integer),
		def("BFL", 2, rng(0, 99), nil, 1, Integer),
	)

	register(SupplementalID, "supplemental",
		[]string{"ATTE", "SUPD"},
		def("ATTE", 1, nil, nil, 0, Integer),
		def("SUPD", 0, nil, nil, 0, Character),
	)
}
