// Package dict holds the static lookup dictionaries for dataset
// generation: name pools, clinician mappings, cost tables, card BINs,
// and probability distributions. Data only; all selection logic lives
// in the callers.
package dict

import "github.com/ovolkova/clinicgen/internal/pick"

// Slavic name pools. Surnames are stored in their masculine base form;
// the assembler inflects them for female clients.
var (
	Surnames = []string{
		"Иванов", "Петров", "Сидоров", "Смирнов", "Кузнецов", "Попов",
		"Васильев", "Соколов", "Михайлов", "Новиков", "Федоров", "Морозов",
		"Волков", "Алексеев", "Лебедев", "Семенов", "Егоров", "Павлов",
		"Козлов", "Степанов", "Николаев", "Орлов", "Андреев", "Макаров",
		"Никитин", "Захаров", "Зайцев", "Соловьев", "Борисов", "Яковлев",
		"Григорьев", "Романов", "Воробьев", "Сергеев", "Фролов", "Ковалевский",
	}

	MaleNames = []string{
		"Александр", "Дмитрий", "Максим", "Сергей", "Андрей", "Алексей",
		"Артем", "Илья", "Кирилл", "Михаил", "Никита", "Матвей",
		"Роман", "Егор", "Иван", "Денис", "Евгений", "Данила",
		"Тимофей", "Владислав", "Игорь", "Владимир", "Павел", "Руслан",
	}

	FemaleNames = []string{
		"Анастасия", "Мария", "Дарья", "Анна", "Елизавета", "Полина",
		"Виктория", "Екатерина", "Софья", "Александра", "Валерия", "Вероника",
		"Арина", "Алиса", "Ксения", "Елена", "Наталья", "Ольга",
		"Татьяна", "Ирина", "Светлана", "Юлия", "Людмила", "Марина",
	}

	MalePatronymics = []string{
		"Александрович", "Дмитриевич", "Сергеевич", "Андреевич", "Алексеевич",
		"Михайлович", "Иванович", "Владимирович", "Николаевич", "Петрович",
		"Павлович", "Евгеньевич", "Олегович", "Игоревич", "Викторович",
		"Борисович", "Анатольевич", "Юрьевич",
	}

	FemalePatronymics = []string{
		"Александровна", "Дмитриевна", "Сергеевна", "Андреевна", "Алексеевна",
		"Михайловна", "Ивановна", "Владимировна", "Николаевна", "Петровна",
		"Павловна", "Евгеньевна", "Олеговна", "Игоревна", "Викторовна",
		"Борисовна", "Анатольевна", "Юрьевна",
	}
)

// Doctors lists every clinician specialization the clinic offers.
var Doctors = []string{
	"терапевт", "хирург", "невролог", "кардиолог", "отоларинголог",
	"офтальмолог", "дерматолог", "эндокринолог", "гастроэнтеролог",
	"гинеколог", "уролог",
}

// DefaultDoctor is the fallback specialization for weighted selection.
const DefaultDoctor = "терапевт"

// Per-gender clinician distributions. Gender-specific specializations
// carry zero weight for the other gender by omission.
var (
	MaleDoctorDist = []pick.Entry{
		{Category: "терапевт", Prob: 0.25},
		{Category: "хирург", Prob: 0.12},
		{Category: "кардиолог", Prob: 0.12},
		{Category: "невролог", Prob: 0.10},
		{Category: "отоларинголог", Prob: 0.08},
		{Category: "офтальмолог", Prob: 0.08},
		{Category: "гастроэнтеролог", Prob: 0.08},
		{Category: "дерматолог", Prob: 0.07},
		{Category: "эндокринолог", Prob: 0.05},
		{Category: "уролог", Prob: 0.05},
	}

	FemaleDoctorDist = []pick.Entry{
		{Category: "терапевт", Prob: 0.22},
		{Category: "гинеколог", Prob: 0.12},
		{Category: "невролог", Prob: 0.10},
		{Category: "кардиолог", Prob: 0.10},
		{Category: "хирург", Prob: 0.08},
		{Category: "отоларинголог", Prob: 0.08},
		{Category: "офтальмолог", Prob: 0.08},
		{Category: "дерматолог", Prob: 0.08},
		{Category: "эндокринолог", Prob: 0.07},
		{Category: "гастроэнтеролог", Prob: 0.07},
	}
)

// DoctorSymptoms maps a specialization to its typical complaints.
var DoctorSymptoms = map[string][]string{
	"терапевт":        {"повышенная температура", "слабость", "головная боль", "кашель", "боль в горле", "насморк", "озноб"},
	"хирург":          {"боль в животе", "боль после травмы", "отек конечности", "нагноение раны", "боль в спине"},
	"невролог":        {"головокружение", "онемение конечностей", "мигрень", "бессонница", "шум в ушах", "тремор рук"},
	"кардиолог":       {"боль в груди", "учащенное сердцебиение", "одышка", "повышенное давление", "аритмия"},
	"отоларинголог":   {"боль в ухе", "заложенность носа", "потеря голоса", "боль при глотании", "снижение слуха"},
	"офтальмолог":     {"снижение зрения", "резь в глазах", "покраснение глаз", "слезотечение", "двоение в глазах"},
	"дерматолог":      {"кожная сыпь", "зуд кожи", "шелушение кожи", "выпадение волос", "новообразование на коже"},
	"эндокринолог":    {"повышенная жажда", "резкое изменение веса", "потливость", "утомляемость", "увеличение щитовидной железы"},
	"гастроэнтеролог": {"изжога", "тошнота", "боль в желудке", "вздутие живота", "нарушение стула"},
	"гинеколог":       {"боль внизу живота", "нарушение цикла", "дискомфорт", "тянущие боли"},
	"уролог":          {"боль при мочеиспускании", "частое мочеиспускание", "боль в пояснице", "отеки"},
}

// GeneralSymptoms supplements a clinician pool when it is exhausted.
var GeneralSymptoms = []string{
	"общее недомогание", "слабость", "повышенная температура",
	"головная боль", "утомляемость", "снижение аппетита",
}

// DoctorAnalyses maps a specialization to its typical lab orders.
var DoctorAnalyses = map[string][]string{
	"терапевт":        {"общий анализ крови", "общий анализ мочи", "биохимический анализ крови", "флюорография"},
	"хирург":          {"общий анализ крови", "рентген конечности", "УЗИ брюшной полости", "коагулограмма крови"},
	"невролог":        {"МРТ головного мозга", "электроэнцефалография", "общий анализ крови", "КТ позвоночника"},
	"кардиолог":       {"ЭКГ", "эхокардиография", "анализ крови на холестерин", "суточный мониторинг давления"},
	"отоларинголог":   {"мазок из зева", "аудиометрия", "рентген пазух носа", "общий анализ крови"},
	"офтальмолог":     {"проверка остроты зрения", "измерение внутриглазного давления", "осмотр глазного дна"},
	"дерматолог":      {"соскоб кожи", "анализ крови на аллергены", "дерматоскопия", "мазок с кожи"},
	"эндокринолог":    {"анализ крови на гормоны", "УЗИ щитовидной железы", "анализ крови на сахар", "общий анализ мочи"},
	"гастроэнтеролог": {"УЗИ брюшной полости", "гастроскопия", "биохимический анализ крови", "анализ кала"},
	"гинеколог":       {"мазок на флору", "УЗИ малого таза", "анализ крови на гормоны", "кольпоскопия"},
	"уролог":          {"общий анализ мочи", "УЗИ почек", "анализ мочи по Нечипоренко", "урофлоуметрия"},
}

// GeneralAnalyses supplements a clinician pool when it is exhausted.
var GeneralAnalyses = []string{
	"общий анализ крови", "общий анализ мочи", "биохимический анализ крови",
}

// AnalysisCosts is the fixed price list in rubles. Analyses missing here
// are priced by keyword category via CostRanges.
var AnalysisCosts = map[string]int{
	"общий анализ крови":         450,
	"общий анализ мочи":          350,
	"биохимический анализ крови": 1250,
	"ЭКГ":                        800,
	"флюорография":               650,
	"эхокардиография":            2200,
	"гастроскопия":               3500,
	"электроэнцефалография":      1900,
	"проверка остроты зрения":    500,
	"дерматоскопия":              900,
	"кольпоскопия":               1700,
	"урофлоуметрия":              1100,
	"аудиометрия":                950,
}

// CostRange prices an analysis by keyword classification. Ranges are
// walked in order; the first keyword hit wins.
type CostRange struct {
	Keywords []string
	Min, Max int
}

// CostRanges orders the keyword categories from most to least specific.
var CostRanges = []CostRange{
	{Keywords: []string{"мрт", "томография"}, Min: 3500, Max: 8000},
	{Keywords: []string{"кт"}, Min: 2500, Max: 6000},
	{Keywords: []string{"узи"}, Min: 1000, Max: 3000},
	{Keywords: []string{"рентген"}, Min: 800, Max: 2500},
	{Keywords: []string{"мазок", "соскоб"}, Min: 500, Max: 1200},
	{Keywords: []string{"кровь", "крови"}, Min: 400, Max: 1500},
	{Keywords: []string{"моча", "мочи"}, Min: 300, Max: 800},
}

// DefaultCostRange prices analyses no keyword matches.
var DefaultCostRange = CostRange{Min: 500, Max: 3000}

// Passport country distribution. RU is the primary country.
var CountryDist = []pick.Entry{
	{Category: "ru", Prob: 0.85},
	{Category: "by", Prob: 0.10},
	{Category: "kz", Prob: 0.05},
}

// BYPassportPrefixes are the two-letter series used by BY passports.
var BYPassportPrefixes = []string{"AB", "BM", "HB", "KH", "MP", "MC", "KB", "PP", "SP", "DP"}

// Issuing bank and payment network distributions for card generation.
var (
	BankDist = []pick.Entry{
		{Category: "sberbank", Prob: 0.35},
		{Category: "vtb", Prob: 0.20},
		{Category: "tinkoff", Prob: 0.20},
		{Category: "alfabank", Prob: 0.15},
		{Category: "gazprombank", Prob: 0.10},
	}

	NetworkDist = []pick.Entry{
		{Category: "mir", Prob: 0.50},
		{Category: "visa", Prob: 0.25},
		{Category: "mastercard", Prob: 0.25},
	}
)

// Fallback categories for the card distributions.
const (
	DefaultBank    = "sberbank"
	DefaultNetwork = "mir"
)

// BankBINs maps (bank, network) to its 6-digit BIN prefix pool.
var BankBINs = map[string]map[string][]string{
	"sberbank": {
		"mir":        {"220220", "220221"},
		"visa":       {"427600", "427400", "427900"},
		"mastercard": {"547900", "546900", "548400"},
	},
	"vtb": {
		"mir":        {"220024"},
		"visa":       {"427229", "447520"},
		"mastercard": {"527883", "524602"},
	},
	"tinkoff": {
		"mir":        {"220070"},
		"visa":       {"437773", "470127"},
		"mastercard": {"553691", "521324"},
	},
	"alfabank": {
		"mir":        {"220015"},
		"visa":       {"415428", "477964"},
		"mastercard": {"510126", "530827"},
	},
	"gazprombank": {
		"mir":        {"220030"},
		"visa":       {"404136", "487415"},
		"mastercard": {"548999", "526483"},
	},
}
