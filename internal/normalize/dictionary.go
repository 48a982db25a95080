package normalize

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/partdex/partdex/internal/domain/lang"
)

// concept maps a canonical English term to its per-language surface forms.
// Translation iterates every concept and replaces any surface form found in
// the query with the English term. Coverage is deliberately sparse: a term
// missing for some language simply falls through untranslated.
type concept struct {
	english string
	forms   map[lang.Code][]string
}

var dictionary = []concept{
	// Price vocabulary
	{"cheap", map[lang.Code][]string{
		lang.Arabic: {"رخيص", "رخيصة"}, lang.Chinese: {"便宜的", "便宜"}, lang.Russian: {"дешевый", "дешёвый", "дешевые", "недорогой"},
		lang.German: {"billig", "billige", "günstig", "günstige"}, lang.French: {"pas cher", "bon marché"},
		lang.Spanish: {"barato", "barata", "baratos"}, lang.Portuguese: {"barato", "barata"},
		lang.Italian: {"economico", "economici"}, lang.Dutch: {"goedkoop", "goedkope"},
		lang.Polish: {"tani", "tanie"}, lang.Turkish: {"ucuz"}, lang.Japanese: {"安い"}, lang.Korean: {"저렴한", "싼"},
	}},
	{"expensive", map[lang.Code][]string{
		lang.Arabic: {"غالي", "غالية"}, lang.Chinese: {"昂贵的", "昂贵", "贵的"}, lang.Russian: {"дорогой", "дорогие"},
		lang.German: {"teuer", "teure"}, lang.French: {"cher", "chère"}, lang.Spanish: {"caro", "cara"},
		lang.Italian: {"costoso"}, lang.Turkish: {"pahalı"},
	}},
	{"price", map[lang.Code][]string{
		lang.Arabic: {"سعر", "السعر"}, lang.Chinese: {"价格"}, lang.Russian: {"цена", "цене", "цену"},
		lang.German: {"preis"}, lang.French: {"prix"}, lang.Spanish: {"precio"}, lang.Portuguese: {"preço"},
		lang.Italian: {"prezzo"}, lang.Dutch: {"prijs"}, lang.Polish: {"cena"}, lang.Turkish: {"fiyat"},
		lang.Japanese: {"価格"}, lang.Korean: {"가격"},
	}},
	{"under", map[lang.Code][]string{
		lang.Arabic: {"أقل من", "اقل من", "تحت"}, lang.Chinese: {"以下", "低于"}, lang.Russian: {"дешевле", "до", "не дороже"},
		lang.German: {"unter", "weniger als"}, lang.French: {"moins de", "sous"}, lang.Spanish: {"menos de", "por debajo de"},
		lang.Portuguese: {"abaixo de", "menos de"}, lang.Italian: {"sotto", "meno di"}, lang.Dutch: {"onder", "minder dan"},
		lang.Polish: {"poniżej"}, lang.Turkish: {"altında"},
	}},
	{"over", map[lang.Code][]string{
		lang.Arabic: {"أكثر من", "اكثر من", "فوق"}, lang.Chinese: {"以上", "高于"}, lang.Russian: {"дороже", "свыше", "более"},
		lang.German: {"über", "mehr als"}, lang.French: {"plus de"}, lang.Spanish: {"más de"},
		lang.Italian: {"sopra", "più di"}, lang.Dutch: {"boven", "meer dan"}, lang.Turkish: {"üzerinde"},
	}},

	// Quantity vocabulary
	{"units", map[lang.Code][]string{
		lang.Arabic: {"قطع", "قطعة", "وحدة", "وحدات"}, lang.Chinese: {"个", "件", "台"}, lang.Russian: {"штук", "штуки", "шт"},
		lang.German: {"stück"}, lang.French: {"pièces", "unités"}, lang.Spanish: {"piezas", "unidades"},
		lang.Portuguese: {"peças", "unidades"}, lang.Italian: {"pezzi"}, lang.Dutch: {"stuks"},
		lang.Polish: {"sztuk"}, lang.Turkish: {"adet"}, lang.Japanese: {"個"}, lang.Korean: {"개"},
	}},
	{"need", map[lang.Code][]string{
		lang.Arabic: {"أحتاج", "احتاج", "محتاج"}, lang.Chinese: {"需要"}, lang.Russian: {"нужно", "нужны", "надо", "требуется"},
		lang.German: {"brauche", "benötige"}, lang.French: {"besoin de", "il me faut"}, lang.Spanish: {"necesito"},
		lang.Portuguese: {"preciso de", "preciso"}, lang.Italian: {"ho bisogno di"}, lang.Dutch: {"nodig"},
		lang.Polish: {"potrzebuję"}, lang.Turkish: {"lazım", "ihtiyacım var"}, lang.Korean: {"필요"},
	}},
	{"wholesale", map[lang.Code][]string{
		lang.Arabic: {"جملة", "بالجملة"}, lang.Chinese: {"批发"}, lang.Russian: {"оптом", "опт"},
		lang.German: {"großhandel"}, lang.Spanish: {"al por mayor"}, lang.Turkish: {"toptan"},
	}},

	// Stock / availability
	{"in stock", map[lang.Code][]string{
		lang.Arabic: {"متوفر", "متوفرة", "موجود"}, lang.Chinese: {"在库", "有货", "现货", "有库存"},
		lang.Russian: {"в наличии", "есть в наличии"}, lang.German: {"auf lager", "vorrätig", "lieferbar"},
		lang.French: {"en stock", "disponible"}, lang.Spanish: {"en stock", "disponible"},
		lang.Portuguese: {"em estoque", "disponível"}, lang.Italian: {"disponibile", "in magazzino"},
		lang.Dutch: {"op voorraad"}, lang.Polish: {"dostępne", "na stanie"}, lang.Turkish: {"stokta"},
		lang.Japanese: {"在庫あり", "在庫"}, lang.Korean: {"재고 있음", "재고"},
	}},

	// Delivery
	{"fast delivery", map[lang.Code][]string{
		lang.Arabic: {"توصيل سريع", "شحن سريع"}, lang.Chinese: {"快速配送", "快递", "急件"},
		lang.Russian: {"быстрая доставка", "срочно"}, lang.German: {"schnelle lieferung", "expressversand"},
		lang.French: {"livraison rapide"}, lang.Spanish: {"entrega rápida", "envío rápido"},
		lang.Portuguese: {"entrega rápida"}, lang.Italian: {"consegna rapida"}, lang.Dutch: {"snelle levering"},
		lang.Polish: {"szybka dostawa"}, lang.Turkish: {"hızlı teslimat"}, lang.Korean: {"빠른 배송"},
	}},
	{"delivery", map[lang.Code][]string{
		lang.Arabic: {"توصيل", "شحن"}, lang.Chinese: {"配送", "送货"}, lang.Russian: {"доставка", "доставкой"},
		lang.German: {"lieferung", "versand"}, lang.French: {"livraison"}, lang.Spanish: {"entrega", "envío"},
		lang.Portuguese: {"entrega"}, lang.Italian: {"consegna"}, lang.Dutch: {"levering"},
		lang.Polish: {"dostawa"}, lang.Turkish: {"teslimat"}, lang.Japanese: {"配送"}, lang.Korean: {"배송"},
	}},
	{"days", map[lang.Code][]string{
		lang.Arabic: {"أيام", "ايام", "يوم"}, lang.Chinese: {"天"}, lang.Russian: {"дней", "дня", "день"},
		lang.German: {"tage", "tagen"}, lang.French: {"jours"}, lang.Spanish: {"días", "dias"},
		lang.Portuguese: {"dias"}, lang.Italian: {"giorni"}, lang.Dutch: {"dagen"}, lang.Polish: {"dni"},
		lang.Turkish: {"gün"}, lang.Japanese: {"日"}, lang.Korean: {"일"},
	}},

	// Quality signals
	{"original", map[lang.Code][]string{
		lang.Arabic: {"أصلي", "اصلي", "أصلية"}, lang.Chinese: {"原装", "原厂", "正品"}, lang.Russian: {"оригинал", "оригинальный", "оригинальные"},
		lang.German: {"original", "originale"}, lang.French: {"d'origine"}, lang.Spanish: {"original"},
		lang.Turkish: {"orijinal"}, lang.Japanese: {"純正"}, lang.Korean: {"정품"},
	}},
	{"aftermarket", map[lang.Code][]string{
		lang.Arabic: {"تجاري", "بديل"}, lang.Chinese: {"副厂"}, lang.Russian: {"неоригинал", "аналог"},
		lang.German: {"nachbau", "zubehör"}, lang.Spanish: {"alternativo"}, lang.Turkish: {"yan sanayi"},
	}},
	{"warranty", map[lang.Code][]string{
		lang.Arabic: {"ضمان", "كفالة"}, lang.Chinese: {"保修", "质保"}, lang.Russian: {"гарантия", "гарантией"},
		lang.German: {"garantie", "gewährleistung"}, lang.French: {"garantie"}, lang.Spanish: {"garantía"},
		lang.Portuguese: {"garantia"}, lang.Italian: {"garanzia"}, lang.Dutch: {"garantie"},
		lang.Polish: {"gwarancja"}, lang.Turkish: {"garanti"}, lang.Korean: {"보증"},
	}},

	// Sort / comparison verbs
	{"cheapest", map[lang.Code][]string{
		lang.Arabic: {"الأرخص", "ارخص"}, lang.Chinese: {"最便宜的", "最便宜"}, lang.Russian: {"самый дешевый", "самые дешевые", "подешевле"},
		lang.German: {"billigste", "günstigste"}, lang.French: {"le moins cher"}, lang.Spanish: {"más barato", "el más barato"},
		lang.Italian: {"più economico"}, lang.Turkish: {"en ucuz"}, lang.Korean: {"가장 저렴한"},
	}},
	{"compare", map[lang.Code][]string{
		lang.Arabic: {"قارن", "مقارنة"}, lang.Chinese: {"比较", "对比"}, lang.Russian: {"сравни", "сравнить"},
		lang.German: {"vergleiche", "vergleichen"}, lang.French: {"comparer"}, lang.Spanish: {"comparar"},
		lang.Turkish: {"karşılaştır"},
	}},
	{"sort", map[lang.Code][]string{
		lang.Arabic: {"رتب", "ترتيب"}, lang.Chinese: {"排序"}, lang.Russian: {"сортировать", "отсортируй"},
		lang.German: {"sortiere", "sortieren"}, lang.French: {"trier"}, lang.Spanish: {"ordenar"},
	}},
	{"best", map[lang.Code][]string{
		lang.Arabic: {"أفضل", "افضل"}, lang.Chinese: {"最好的", "最佳"}, lang.Russian: {"лучшие", "лучший"},
		lang.German: {"beste", "besten"}, lang.French: {"meilleur", "meilleurs"}, lang.Spanish: {"mejor", "mejores"},
		lang.Turkish: {"en iyi"}, lang.Korean: {"최고의"},
	}},

	// Part categories (longest phrases first within a language list)
	{"brake pads", map[lang.Code][]string{
		lang.Arabic: {"فحمات فرامل", "فحمات الفرامل", "تيل فرامل"}, lang.Chinese: {"刹车片", "制动片"},
		lang.Russian: {"тормозные колодки", "колодки"}, lang.German: {"bremsbeläge", "bremsklötze"},
		lang.French: {"plaquettes de frein"}, lang.Spanish: {"pastillas de freno"},
		lang.Portuguese: {"pastilhas de freio"}, lang.Italian: {"pastiglie freno"}, lang.Dutch: {"remblokken"},
		lang.Polish: {"klocki hamulcowe"}, lang.Turkish: {"fren balataları", "fren balatası"},
		lang.Japanese: {"ブレーキパッド"}, lang.Korean: {"브레이크 패드"},
	}},
	{"brake disc", map[lang.Code][]string{
		lang.Arabic: {"هوب فرامل", "قرص فرامل"}, lang.Chinese: {"刹车盘", "制动盘"}, lang.Russian: {"тормозной диск", "тормозные диски"},
		lang.German: {"bremsscheibe", "bremsscheiben"}, lang.French: {"disque de frein"}, lang.Spanish: {"disco de freno"},
		lang.Turkish: {"fren diski"},
	}},
	{"brake", map[lang.Code][]string{
		lang.Arabic: {"فرامل", "الفرامل", "بريك"}, lang.Chinese: {"刹车", "制动"}, lang.Russian: {"тормоз", "тормоза", "тормозной"},
		lang.German: {"bremse", "bremsen"}, lang.French: {"frein", "freins"}, lang.Spanish: {"freno", "frenos"},
		lang.Portuguese: {"freio", "freios"}, lang.Italian: {"freno", "freni"}, lang.Dutch: {"rem", "remmen"},
		lang.Polish: {"hamulec", "hamulce"}, lang.Turkish: {"fren"}, lang.Japanese: {"ブレーキ"}, lang.Korean: {"브레이크"},
	}},
	{"oil filter", map[lang.Code][]string{
		lang.Arabic: {"فلتر زيت", "فلتر الزيت"}, lang.Chinese: {"机油滤清器", "机油滤芯"}, lang.Russian: {"масляный фильтр"},
		lang.German: {"ölfilter"}, lang.French: {"filtre à huile"}, lang.Spanish: {"filtro de aceite"},
		lang.Portuguese: {"filtro de óleo"}, lang.Italian: {"filtro olio"}, lang.Dutch: {"oliefilter"},
		lang.Polish: {"filtr oleju"}, lang.Turkish: {"yağ filtresi"}, lang.Japanese: {"オイルフィルター"}, lang.Korean: {"오일 필터"},
	}},
	{"air filter", map[lang.Code][]string{
		lang.Arabic: {"فلتر هواء", "فلتر الهواء"}, lang.Chinese: {"空气滤清器", "空气滤芯"}, lang.Russian: {"воздушный фильтр"},
		lang.German: {"luftfilter"}, lang.French: {"filtre à air"}, lang.Spanish: {"filtro de aire"},
		lang.Turkish: {"hava filtresi"}, lang.Korean: {"에어 필터"},
	}},
	{"filter", map[lang.Code][]string{
		lang.Arabic: {"فلتر", "فلاتر"}, lang.Chinese: {"滤清器", "滤芯", "过滤器"}, lang.Russian: {"фильтр", "фильтры"},
		lang.German: {"filter"}, lang.French: {"filtre", "filtres"}, lang.Spanish: {"filtro", "filtros"},
		lang.Portuguese: {"filtro", "filtros"}, lang.Italian: {"filtro", "filtri"}, lang.Dutch: {"filter", "filters"},
		lang.Polish: {"filtr", "filtry"}, lang.Turkish: {"filtre"}, lang.Japanese: {"フィルター"}, lang.Korean: {"필터"},
	}},
	{"spark plug", map[lang.Code][]string{
		lang.Arabic: {"بوجيهات", "شمعات"}, lang.Chinese: {"火花塞"}, lang.Russian: {"свеча зажигания", "свечи зажигания", "свечи"},
		lang.German: {"zündkerze", "zündkerzen"}, lang.French: {"bougie d'allumage", "bougies"}, lang.Spanish: {"bujía", "bujías"},
		lang.Turkish: {"buji"}, lang.Japanese: {"スパークプラグ"}, lang.Korean: {"점화 플러그"},
	}},
	{"battery", map[lang.Code][]string{
		lang.Arabic: {"بطارية", "بطاريات"}, lang.Chinese: {"电池", "蓄电池"}, lang.Russian: {"аккумулятор", "акб"},
		lang.German: {"batterie", "autobatterie"}, lang.French: {"batterie"}, lang.Spanish: {"batería"},
		lang.Portuguese: {"bateria"}, lang.Italian: {"batteria"}, lang.Dutch: {"accu"}, lang.Polish: {"akumulator"},
		lang.Turkish: {"akü"}, lang.Japanese: {"バッテリー"}, lang.Korean: {"배터리"},
	}},
	{"tire", map[lang.Code][]string{
		lang.Arabic: {"إطار", "اطارات", "كفرات"}, lang.Chinese: {"轮胎"}, lang.Russian: {"шина", "шины", "резина"},
		lang.German: {"reifen"}, lang.French: {"pneu", "pneus"}, lang.Spanish: {"neumático", "llanta"},
		lang.Portuguese: {"pneu"}, lang.Italian: {"pneumatico", "gomme"}, lang.Dutch: {"band", "banden"},
		lang.Polish: {"opona", "opony"}, lang.Turkish: {"lastik"}, lang.Japanese: {"タイヤ"}, lang.Korean: {"타이어"},
	}},
	{"shock absorber", map[lang.Code][]string{
		lang.Arabic: {"مساعدات", "مساعد"}, lang.Chinese: {"减震器"}, lang.Russian: {"амортизатор", "амортизаторы"},
		lang.German: {"stoßdämpfer"}, lang.French: {"amortisseur", "amortisseurs"}, lang.Spanish: {"amortiguador"},
		lang.Turkish: {"amortisör"},
	}},
	{"radiator", map[lang.Code][]string{
		lang.Arabic: {"ردياتير", "مبرد"}, lang.Chinese: {"散热器", "水箱"}, lang.Russian: {"радиатор"},
		lang.German: {"kühler"}, lang.French: {"radiateur"}, lang.Spanish: {"radiador"}, lang.Turkish: {"radyatör"},
	}},
	{"clutch", map[lang.Code][]string{
		lang.Arabic: {"دبرياج", "كلتش"}, lang.Chinese: {"离合器"}, lang.Russian: {"сцепление"},
		lang.German: {"kupplung"}, lang.French: {"embrayage"}, lang.Spanish: {"embrague"}, lang.Turkish: {"debriyaj"},
	}},
	{"alternator", map[lang.Code][]string{
		lang.Arabic: {"دينمو"}, lang.Chinese: {"发电机"}, lang.Russian: {"генератор"},
		lang.German: {"lichtmaschine"}, lang.French: {"alternateur"}, lang.Spanish: {"alternador"}, lang.Turkish: {"alternatör"},
	}},
	{"starter", map[lang.Code][]string{
		lang.Arabic: {"سلف"}, lang.Chinese: {"起动机", "启动机"}, lang.Russian: {"стартер"},
		lang.German: {"anlasser"}, lang.French: {"démarreur"}, lang.Spanish: {"motor de arranque"}, lang.Turkish: {"marş motoru"},
	}},
	{"headlight", map[lang.Code][]string{
		lang.Arabic: {"كشاف", "فانوس"}, lang.Chinese: {"大灯", "前照灯"}, lang.Russian: {"фара", "фары"},
		lang.German: {"scheinwerfer"}, lang.French: {"phare", "phares"}, lang.Spanish: {"faro", "faros"}, lang.Turkish: {"far"},
	}},
	{"bumper", map[lang.Code][]string{
		lang.Arabic: {"صدام", "دعامية"}, lang.Chinese: {"保险杠"}, lang.Russian: {"бампер"},
		lang.German: {"stoßstange"}, lang.French: {"pare-chocs"}, lang.Spanish: {"parachoques"}, lang.Turkish: {"tampon"},
	}},
	{"mirror", map[lang.Code][]string{
		lang.Arabic: {"مراية", "مرايا"}, lang.Chinese: {"后视镜"}, lang.Russian: {"зеркало", "зеркала"},
		lang.German: {"spiegel", "außenspiegel"}, lang.French: {"rétroviseur"}, lang.Spanish: {"espejo", "retrovisor"},
		lang.Turkish: {"ayna"},
	}},
	{"belt", map[lang.Code][]string{
		lang.Arabic: {"سير", "قشاط"}, lang.Chinese: {"皮带", "正时带"}, lang.Russian: {"ремень", "ремни"},
		lang.German: {"riemen", "zahnriemen"}, lang.French: {"courroie"}, lang.Spanish: {"correa"}, lang.Turkish: {"kayış"},
	}},
	{"pump", map[lang.Code][]string{
		lang.Arabic: {"طرمبة", "مضخة"}, lang.Chinese: {"泵", "水泵"}, lang.Russian: {"насос", "помпа"},
		lang.German: {"pumpe", "wasserpumpe"}, lang.French: {"pompe"}, lang.Spanish: {"bomba"}, lang.Turkish: {"pompa"},
	}},
	{"sensor", map[lang.Code][]string{
		lang.Arabic: {"حساس", "حساسات"}, lang.Chinese: {"传感器"}, lang.Russian: {"датчик", "датчики"},
		lang.German: {"sensor", "fühler"}, lang.French: {"capteur"}, lang.Spanish: {"sensor"}, lang.Turkish: {"sensör"},
	}},
	{"gasket", map[lang.Code][]string{
		lang.Arabic: {"وجه", "جوان"}, lang.Chinese: {"垫片", "密封垫"}, lang.Russian: {"прокладка"},
		lang.German: {"dichtung"}, lang.French: {"joint"}, lang.Spanish: {"junta"}, lang.Turkish: {"conta"},
	}},
	{"wiper", map[lang.Code][]string{
		lang.Arabic: {"مساحات"}, lang.Chinese: {"雨刷", "雨刮器"}, lang.Russian: {"дворники", "щетки стеклоочистителя"},
		lang.German: {"scheibenwischer", "wischer"}, lang.French: {"essuie-glace"}, lang.Spanish: {"limpiaparabrisas"},
		lang.Turkish: {"silecek"},
	}},

	// Condition
	{"new", map[lang.Code][]string{
		lang.Arabic: {"جديد", "جديدة"}, lang.Chinese: {"全新", "新的"}, lang.Russian: {"новый", "новые", "новая"},
		lang.German: {"neu", "neue"}, lang.French: {"neuf", "neuve"}, lang.Spanish: {"nuevo", "nueva"},
		lang.Turkish: {"yeni"}, lang.Korean: {"새"},
	}},
	{"used", map[lang.Code][]string{
		lang.Arabic: {"مستعمل", "مستعملة"}, lang.Chinese: {"二手", "旧的"}, lang.Russian: {"б/у", "бу", "подержанный"},
		lang.German: {"gebraucht", "gebrauchte"}, lang.French: {"occasion", "d'occasion"}, lang.Spanish: {"usado", "usada"},
		lang.Turkish: {"ikinci el"}, lang.Korean: {"중고"},
	}},

	// Country-of-origin adjectives
	{"japanese", map[lang.Code][]string{
		lang.Arabic: {"ياباني", "يابانية"}, lang.Chinese: {"日本的", "日本"}, lang.Russian: {"японский", "японские"},
		lang.German: {"japanisch", "japanische"}, lang.French: {"japonais"}, lang.Spanish: {"japonés", "japonesa"},
		lang.Turkish: {"japon"},
	}},
	{"german", map[lang.Code][]string{
		lang.Arabic: {"ألماني", "الماني"}, lang.Chinese: {"德国的", "德国"}, lang.Russian: {"немецкий", "немецкие"},
		lang.German: {"deutsch", "deutsche"}, lang.French: {"allemand"}, lang.Spanish: {"alemán", "alemana"},
		lang.Turkish: {"alman"},
	}},
	{"chinese", map[lang.Code][]string{
		lang.Arabic: {"صيني", "صينية"}, lang.Chinese: {"中国的", "国产"}, lang.Russian: {"китайский", "китайские"},
		lang.German: {"chinesisch", "chinesische"}, lang.French: {"chinois"}, lang.Spanish: {"chino", "china"},
		lang.Turkish: {"çin"},
	}},
	{"korean", map[lang.Code][]string{
		lang.Arabic: {"كوري", "كورية"}, lang.Chinese: {"韩国的", "韩国"}, lang.Russian: {"корейский", "корейские"},
		lang.Turkish: {"kore"},
	}},

	// Fuel types
	{"diesel", map[lang.Code][]string{
		lang.Arabic: {"ديزل"}, lang.Chinese: {"柴油"}, lang.Russian: {"дизель", "дизельный"},
		lang.Turkish: {"dizel"}, lang.Korean: {"디젤"},
	}},
	{"petrol", map[lang.Code][]string{
		lang.Arabic: {"بنزين"}, lang.Chinese: {"汽油"}, lang.Russian: {"бензин", "бензиновый"},
		lang.German: {"benzin"}, lang.French: {"essence"}, lang.Spanish: {"gasolina"}, lang.Turkish: {"benzin"},
	}},
	{"electric", map[lang.Code][]string{
		lang.Arabic: {"كهربائي", "كهربائية"}, lang.Chinese: {"电动"}, lang.Russian: {"электрический", "электро"},
		lang.German: {"elektrisch"}, lang.Spanish: {"eléctrico"}, lang.Turkish: {"elektrikli"},
	}},

	// Vehicle types
	{"truck", map[lang.Code][]string{
		lang.Arabic: {"شاحنة"}, lang.Chinese: {"卡车", "货车"}, lang.Russian: {"грузовик", "грузовой"},
		lang.German: {"lkw", "lastwagen"}, lang.French: {"camion"}, lang.Spanish: {"camión"}, lang.Turkish: {"kamyon"},
	}},
	{"car", map[lang.Code][]string{
		lang.Arabic: {"سيارة", "سيارات"}, lang.Chinese: {"汽车", "轿车"}, lang.Russian: {"машина", "автомобиль", "авто"},
		lang.German: {"auto", "pkw", "wagen"}, lang.French: {"voiture"}, lang.Spanish: {"coche", "carro"},
		lang.Portuguese: {"carro"}, lang.Italian: {"auto", "macchina"}, lang.Turkish: {"araba", "araç"},
		lang.Japanese: {"車"}, lang.Korean: {"자동차"},
	}},

	// Generic verbs
	{"find", map[lang.Code][]string{
		lang.Arabic: {"ابحث عن", "ابحث", "دور على"}, lang.Chinese: {"找", "查找", "寻找"}, lang.Russian: {"найди", "найти", "ищу"},
		lang.German: {"finde", "suche"}, lang.French: {"trouve", "trouver"}, lang.Spanish: {"encuentra", "buscar"},
		lang.Portuguese: {"encontre", "buscar"}, lang.Italian: {"trova", "cercare"}, lang.Dutch: {"vind", "zoek"},
		lang.Polish: {"znajdź", "szukam"}, lang.Turkish: {"bul", "ara"}, lang.Japanese: {"探す"}, lang.Korean: {"찾아"},
	}},
	{"show", map[lang.Code][]string{
		lang.Arabic: {"أرني", "اعرض"}, lang.Chinese: {"显示", "给我看"}, lang.Russian: {"покажи", "показать"},
		lang.German: {"zeige", "zeig mir"}, lang.French: {"montre", "affiche"}, lang.Spanish: {"muestra", "muéstrame"},
		lang.Turkish: {"göster"}, lang.Korean: {"보여줘"},
	}},
	{"buy", map[lang.Code][]string{
		lang.Arabic: {"اشتري", "شراء"}, lang.Chinese: {"买", "购买"}, lang.Russian: {"купить", "куплю"},
		lang.German: {"kaufen", "kaufe"}, lang.French: {"acheter"}, lang.Spanish: {"comprar"},
		lang.Turkish: {"satın al", "al"}, lang.Japanese: {"買う"}, lang.Korean: {"구매"},
	}},
}

// compiled replacement plan per language, built once on first use.
type replacement struct {
	re      *regexp.Regexp // nil for non-Latin forms replaced by substring
	literal string         // the raw surface form when re is nil
	english string
}

var (
	plansMu sync.Mutex
	plans   = map[lang.Code][]replacement{}
)

// Translate substitutes every known surface form of the given language
// with its canonical English term. Whole-word case-insensitive matching
// for Latin forms; longest-first substring replacement for scripts
// without word boundaries. English input is returned unchanged.
func Translate(query string, code lang.Code) string {
	if code == lang.English {
		return query
	}
	out := query
	for _, r := range planFor(code) {
		if r.re != nil {
			out = r.re.ReplaceAllString(out, " "+r.english+" ")
		} else if strings.Contains(out, r.literal) {
			out = strings.ReplaceAll(out, r.literal, " "+r.english+" ")
		}
	}
	return squashSpaces(out)
}

func planFor(code lang.Code) []replacement {
	plansMu.Lock()
	defer plansMu.Unlock()
	if p, ok := plans[code]; ok {
		return p
	}

	var p []replacement
	for _, c := range dictionary {
		for _, form := range c.forms[code] {
			if isLatinForm(form) {
				re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(form) + `\b`)
				p = append(p, replacement{re: re, english: c.english})
			} else {
				p = append(p, replacement{literal: form, english: c.english})
			}
		}
	}
	// Longer forms first so "便宜的" wins over "便宜" and multi-word
	// phrases win over their parts.
	sort.SliceStable(p, func(i, j int) bool {
		return len(formOf(p[i])) > len(formOf(p[j]))
	})

	plans[code] = p
	return p
}

func formOf(r replacement) string {
	if r.re != nil {
		return r.re.String()
	}
	return r.literal
}

func isLatinForm(form string) bool {
	for _, r := range form {
		if r > 0x024F && r != '’' && r != '\'' {
			return false
		}
	}
	return true
}

var spaceRun = regexp.MustCompile(`\s+`)

func squashSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
