package gazetteer

// Entry is one external-script -> internal-script correspondence. Entries are
// kept as ordered slices, not map literals, so the reverse tables derived at
// startup invert them in a fixed order.
type Entry struct {
	External string
	Internal string
}

// Abbrev maps a short internal-script province form, as customer data often
// stores it, to the external full name ("경기" -> "Gyeonggi-do").
type Abbrev struct {
	Short    string
	External string
}

// provinceEntries covers the 17 first-level divisions with the romanized
// names used by the boundary dataset (GADM-style NAME_1 values).
var provinceEntries = []Entry{
	{"Seoul", "서울특별시"},
	{"Busan", "부산광역시"},
	{"Daegu", "대구광역시"},
	{"Incheon", "인천광역시"},
	{"Gwangju", "광주광역시"},
	{"Daejeon", "대전광역시"},
	{"Ulsan", "울산광역시"},
	{"Sejong", "세종특별자치시"},
	{"Gyeonggi-do", "경기도"},
	{"Gangwon-do", "강원도"},
	{"Chungcheongbuk-do", "충청북도"},
	{"Chungcheongnam-do", "충청남도"},
	{"Jeollabuk-do", "전라북도"},
	{"Jeollanam-do", "전라남도"},
	{"Gyeongsangbuk-do", "경상북도"},
	{"Gyeongsangnam-do", "경상남도"},
	{"Jeju", "제주특별자치도"},
}

// provinceAbbrevs are the short province forms found in customer rows.
var provinceAbbrevs = []Abbrev{
	{"서울", "Seoul"},
	{"부산", "Busan"},
	{"대구", "Daegu"},
	{"인천", "Incheon"},
	{"광주", "Gwangju"},
	{"대전", "Daejeon"},
	{"울산", "Ulsan"},
	{"세종", "Sejong"},
	{"경기", "Gyeonggi-do"},
	{"강원", "Gangwon-do"},
	{"충북", "Chungcheongbuk-do"},
	{"충남", "Chungcheongnam-do"},
	{"전북", "Jeollabuk-do"},
	{"전남", "Jeollanam-do"},
	{"경북", "Gyeongsangbuk-do"},
	{"경남", "Gyeongsangnam-do"},
	{"제주", "Jeju"},
}

// municipalityEntries covers the second-level divisions (NAME_2 values) that
// appear in customer data. Districts whose romanized name repeats across
// provinces (Jung-gu, Dong-gu, ...) are listed once; the reverse table keeps
// the first entry, which is fine because customer keys at this level are
// already internal-script.
var municipalityEntries = []Entry{
	// Seoul
	{"Jongno-gu", "종로구"},
	{"Jung-gu", "중구"},
	{"Yongsan-gu", "용산구"},
	{"Seongdong-gu", "성동구"},
	{"Gwangjin-gu", "광진구"},
	{"Dongdaemun-gu", "동대문구"},
	{"Seodaemun-gu", "서대문구"},
	{"Mapo-gu", "마포구"},
	{"Yangcheon-gu", "양천구"},
	{"Gangseo-gu", "강서구"},
	{"Guro-gu", "구로구"},
	{"Geumcheon-gu", "금천구"},
	{"Yeongdeungpo-gu", "영등포구"},
	{"Dongjak-gu", "동작구"},
	{"Gwanak-gu", "관악구"},
	{"Seocho-gu", "서초구"},
	{"Gangnam-gu", "강남구"},
	{"Songpa-gu", "송파구"},
	{"Gangdong-gu", "강동구"},
	{"Nowon-gu", "노원구"},
	// Busan / metropolitan districts
	{"Dong-gu", "동구"},
	{"Seo-gu", "서구"},
	{"Nam-gu", "남구"},
	{"Buk-gu", "북구"},
	{"Haeundae-gu", "해운대구"},
	{"Saha-gu", "사하구"},
	{"Yeonje-gu", "연제구"},
	{"Suseong-gu", "수성구"},
	{"Dalseo-gu", "달서구"},
	{"Yeonsu-gu", "연수구"},
	{"Bupyeong-gu", "부평구"},
	{"Namdong-gu", "남동구"},
	// Gyeonggi-do
	{"Suwon-si", "수원시"},
	{"Seongnam-si", "성남시"},
	{"Goyang-si", "고양시"},
	{"Yongin-si", "용인시"},
	{"Bucheon-si", "부천시"},
	{"Ansan-si", "안산시"},
	{"Anyang-si", "안양시"},
	{"Pyeongtaek-si", "평택시"},
	{"Hwaseong-si", "화성시"},
	{"Paju-si", "파주시"},
	{"Gimpo-si", "김포시"},
	{"Gwangmyeong-si", "광명시"},
	{"Uijeongbu-si", "의정부시"},
	{"Namyangju-si", "남양주시"},
	// Gangwon-do
	{"Chuncheon-si", "춘천시"},
	{"Wonju-si", "원주시"},
	{"Gangneung-si", "강릉시"},
	// Chungcheong
	{"Cheongju-si", "청주시"},
	{"Chungju-si", "충주시"},
	{"Cheonan-si", "천안시"},
	{"Asan-si", "아산시"},
	{"Seosan-si", "서산시"},
	// Jeolla
	{"Jeonju-si", "전주시"},
	{"Gunsan-si", "군산시"},
	{"Iksan-si", "익산시"},
	{"Mokpo-si", "목포시"},
	{"Yeosu-si", "여수시"},
	{"Suncheon-si", "순천시"},
	{"Gwangyang-si", "광양시"},
	// Gyeongsang
	{"Pohang-si", "포항시"},
	{"Gyeongju-si", "경주시"},
	{"Gumi-si", "구미시"},
	{"Andong-si", "안동시"},
	{"Changwon-si", "창원시"},
	{"Jinju-si", "진주시"},
	{"Gimhae-si", "김해시"},
	{"Yangsan-si", "양산시"},
	{"Geoje-si", "거제시"},
	// Jeju
	{"Jeju-si", "제주시"},
	{"Seogwipo-si", "서귀포시"},
}
