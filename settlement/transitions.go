package settlement

// transitionEntry holds the UTC midnights of the two civil days in one year on which GB
// changes its clocks: the day it enters BST in spring and the day it returns to GMT in
// autumn.
type transitionEntry struct {
	springForward int64
	fallBack      int64
}

// transitionDates lists the GB clock change days for every supported year, in ascending
// order. The values come from the IANA timezone database via `sp2ts table` - regenerate
// offline and review against this table rather than computing at runtime.
var transitionDates = []transitionEntry{
	{638323200, 657072000},   // 1990: 1990-03-25, 1990-10-28
	{670377600, 688521600},   // 1991: 1991-03-31, 1991-10-27
	{701827200, 719971200},   // 1992: 1992-03-29, 1992-10-25
	{733276800, 751420800},   // 1993: 1993-03-28, 1993-10-24
	{764726400, 782870400},   // 1994: 1994-03-27, 1994-10-23
	{796176000, 814320000},   // 1995: 1995-03-26, 1995-10-22
	{828230400, 846374400},   // 1996: 1996-03-31, 1996-10-27
	{859680000, 877824000},   // 1997: 1997-03-30, 1997-10-26
	{891129600, 909273600},   // 1998: 1998-03-29, 1998-10-25
	{922579200, 941328000},   // 1999: 1999-03-28, 1999-10-31
	{954028800, 972777600},   // 2000: 2000-03-26, 2000-10-29
	{985478400, 1004227200},  // 2001: 2001-03-25, 2001-10-28
	{1017532800, 1035676800}, // 2002: 2002-03-31, 2002-10-27
	{1048982400, 1067126400}, // 2003: 2003-03-30, 2003-10-26
	{1080432000, 1099180800}, // 2004: 2004-03-28, 2004-10-31
	{1111881600, 1130630400}, // 2005: 2005-03-27, 2005-10-30
	{1143331200, 1162080000}, // 2006: 2006-03-26, 2006-10-29
	{1174780800, 1193529600}, // 2007: 2007-03-25, 2007-10-28
	{1206835200, 1224979200}, // 2008: 2008-03-30, 2008-10-26
	{1238284800, 1256428800}, // 2009: 2009-03-29, 2009-10-25
	{1269734400, 1288483200}, // 2010: 2010-03-28, 2010-10-31
	{1301184000, 1319932800}, // 2011: 2011-03-27, 2011-10-30
	{1332633600, 1351382400}, // 2012: 2012-03-25, 2012-10-28
	{1364688000, 1382832000}, // 2013: 2013-03-31, 2013-10-27
	{1396137600, 1414281600}, // 2014: 2014-03-30, 2014-10-26
	{1427587200, 1445731200}, // 2015: 2015-03-29, 2015-10-25
	{1459036800, 1477785600}, // 2016: 2016-03-27, 2016-10-30
	{1490486400, 1509235200}, // 2017: 2017-03-26, 2017-10-29
	{1521936000, 1540684800}, // 2018: 2018-03-25, 2018-10-28
	{1553990400, 1572134400}, // 2019: 2019-03-31, 2019-10-27
	{1585440000, 1603584000}, // 2020: 2020-03-29, 2020-10-25
	{1616889600, 1635638400}, // 2021: 2021-03-28, 2021-10-31
	{1648339200, 1667088000}, // 2022: 2022-03-27, 2022-10-30
	{1679788800, 1698537600}, // 2023: 2023-03-26, 2023-10-29
	{1711843200, 1729987200}, // 2024: 2024-03-31, 2024-10-27
	{1743292800, 1761436800}, // 2025: 2025-03-30, 2025-10-26
	{1774742400, 1792886400}, // 2026: 2026-03-29, 2026-10-25
	{1806192000, 1824940800}, // 2027: 2027-03-28, 2027-10-31
	{1837641600, 1856390400}, // 2028: 2028-03-26, 2028-10-29
	{1869091200, 1887840000}, // 2029: 2029-03-25, 2029-10-28
	{1901145600, 1919289600}, // 2030: 2030-03-31, 2030-10-27
	{1932595200, 1950739200}, // 2031: 2031-03-30, 2031-10-26
	{1964044800, 1982793600}, // 2032: 2032-03-28, 2032-10-31
	{1995494400, 2014243200}, // 2033: 2033-03-27, 2033-10-30
	{2026944000, 2045692800}, // 2034: 2034-03-26, 2034-10-29
	{2058393600, 2077142400}, // 2035: 2035-03-25, 2035-10-28
	{2090448000, 2108592000}, // 2036: 2036-03-30, 2036-10-26
	{2121897600, 2140041600}, // 2037: 2037-03-29, 2037-10-25
}

// MaxPeriods returns the number of settlement periods in the given civil day: 46 on the
// day GB enters BST, 50 on the day it leaves BST and 48 on every other day.
func MaxPeriods(date Date) int {
	midnight := date.UTCMidnight()
	for _, entry := range transitionDates {
		if midnight == entry.springForward {
			return 46
		}
		if midnight == entry.fallBack {
			return 50
		}
	}
	return 48
}

// inBST reports whether the civil day starting at the given UTC midnight falls within the
// BST season, when local clocks run an hour ahead of UTC. The test is open on the spring
// side and closed on the fall side: the spring clock change day itself is not in the
// season, but the fall clock change day is.
func inBST(dayStart int64) bool {
	for _, entry := range transitionDates {
		if entry.springForward < dayStart && dayStart <= entry.fallBack {
			return true
		}
	}
	return false
}

// supportedRange returns the earliest and latest timestamps covered by the transition
// table, both inclusive.
func supportedRange() (int64, int64) {
	return transitionDates[0].springForward, transitionDates[len(transitionDates)-1].fallBack
}
