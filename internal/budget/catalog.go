package budget

import "github.com/qawamdev/qawam/internal/model"

// CatalogItem is one well-known expense with its category and a short
// explanation shown by the guided wizard.
type CatalogItem struct {
	Name     string
	Category model.Category
	Hint     string
}

// Catalog is the finite name → category mapping used for
// auto-categorization and wizard prompts. It is configuration data, not
// logic: names outside the catalog fall back to the default category.
type Catalog struct {
	Items []CatalogItem

	byName map[string]model.Category
}

// DefaultCatalog returns the built-in catalog for the given language.
func DefaultCatalog(lang model.Language) Catalog {
	items := catalogEN
	if lang == model.Arabic {
		items = catalogAR
	}
	c := Catalog{Items: items, byName: make(map[string]model.Category, len(items))}
	for _, it := range items {
		c.byName[it.Name] = it.Category
	}
	return c
}

// Categorize returns the category for a known expense name. Unmapped names
// fall back to Need with ok=false so callers can tell guess from match.
func (c Catalog) Categorize(name string) (cat model.Category, ok bool) {
	if cat, ok := c.byName[name]; ok {
		return cat, true
	}
	return model.Need, false
}

// Names returns the catalog names in order, for suggestion lists.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Items))
	for i, it := range c.Items {
		names[i] = it.Name
	}
	return names
}

var catalogAR = []CatalogItem{
	{Name: "قسط السيارة", Category: model.Need, Hint: "القسط الشهري لتمويل السيارة"},
	{Name: "التمويل الشخصي", Category: model.Need, Hint: "قسط القرض الشخصي الشهري"},
	{Name: "التمويل العقاري", Category: model.Need, Hint: "قسط المنزل أو الإيجار الشهري"},
	{Name: "مصاريف المنزل اليومية", Category: model.Need, Hint: "التموينات والمشتريات الأساسية"},
	{Name: "المصروف المدرسي", Category: model.Need, Hint: "رسوم ومصاريف الدراسة"},
	{Name: "فاتورة الكهرباء", Category: model.Need, Hint: "فاتورة الكهرباء الشهرية"},
	{Name: "فاتورة المياه", Category: model.Need, Hint: "فاتورة المياه الشهرية"},
	{Name: "فاتورة الجوال والإنترنت", Category: model.Need, Hint: "باقات الاتصال والإنترنت"},
	{Name: "المواصلات", Category: model.Need, Hint: "تنقلات العمل والمشاوير الأساسية"},
	{Name: "وقود السيارة", Category: model.Need, Hint: "تعبئة الوقود الشهرية"},
	{Name: "مصروفات طبية وعلاجية", Category: model.Need, Hint: "أدوية ومواعيد طبية منتظمة"},
	{Name: "صيانة وإصلاحات المنزل", Category: model.Need, Hint: "صيانة دورية للمنزل"},
	{Name: "غسيل السيارة", Category: model.Want, Hint: "اشتراك أو خدمة غسيل السيارة"},
	{Name: "غسيل المنزل الخارجي", Category: model.Want, Hint: "خدمات التنظيف الخارجي"},
	{Name: "هدية الوالدة", Category: model.Want, Hint: "مبلغ شهري مخصص للوالدة"},
	{Name: "هدية الزوجة", Category: model.Want, Hint: "مبلغ شهري مخصص للزوجة"},
	{Name: "العاملة المنزلية", Category: model.Want, Hint: "راتب العاملة المنزلية"},
	{Name: "دروس خصوصية", Category: model.Want, Hint: "دروس تقوية للأبناء"},
	{Name: "مشتريات الأبناء", Category: model.Want, Hint: "طلبات ومشتريات الأبناء"},
	{Name: "المطاعم والكافيهات", Category: model.Want, Hint: "الوجبات خارج المنزل"},
	{Name: "مصاريف ترفيه وتسوق", Category: model.Want, Hint: "الترفيه والتسوق العام"},
	{Name: "الصدقة", Category: model.Want, Hint: "مبلغ شهري للصدقة"},
	{Name: "الاشتراكات الشهرية", Category: model.Want, Hint: "اشتراكات رقمية ونوادي"},
	{Name: "المصروف الشخصي", Category: model.Want, Hint: "مصروفك الشخصي الشهري"},
	{Name: "ادخار عام للطوارئ", Category: model.Saving, Hint: "مبلغ يحفظ لحالات الطوارئ"},
	{Name: "الادخار للعيد القادم", Category: model.Saving, Hint: "التجهيز لمصاريف العيد"},
	{Name: "ادخار تعليمي للأبناء", Category: model.Saving, Hint: "ادخار لمستقبل الأبناء التعليمي"},
	{Name: "الاستثمار", Category: model.Saving, Hint: "مساهمات استثمارية شهرية"},
}

var catalogEN = []CatalogItem{
	{Name: "Car payment", Category: model.Need, Hint: "Monthly car loan installment"},
	{Name: "Personal loan", Category: model.Need, Hint: "Monthly personal loan installment"},
	{Name: "Mortgage or rent", Category: model.Need, Hint: "Monthly housing payment"},
	{Name: "Groceries", Category: model.Need, Hint: "Day-to-day household essentials"},
	{Name: "School fees", Category: model.Need, Hint: "Tuition and school expenses"},
	{Name: "Electricity bill", Category: model.Need, Hint: "Monthly electricity bill"},
	{Name: "Water bill", Category: model.Need, Hint: "Monthly water bill"},
	{Name: "Phone and internet", Category: model.Need, Hint: "Mobile and internet plans"},
	{Name: "Transportation", Category: model.Need, Hint: "Commuting and essential trips"},
	{Name: "Fuel", Category: model.Need, Hint: "Monthly fuel spend"},
	{Name: "Medical expenses", Category: model.Need, Hint: "Regular medication and appointments"},
	{Name: "Home maintenance", Category: model.Need, Hint: "Recurring home upkeep"},
	{Name: "Car wash", Category: model.Want, Hint: "Car wash subscription or service"},
	{Name: "Exterior cleaning", Category: model.Want, Hint: "Outside cleaning services"},
	{Name: "Gift for mother", Category: model.Want, Hint: "Monthly allowance for your mother"},
	{Name: "Gift for spouse", Category: model.Want, Hint: "Monthly allowance for your spouse"},
	{Name: "Housekeeper", Category: model.Want, Hint: "Domestic helper salary"},
	{Name: "Private tutoring", Category: model.Want, Hint: "Extra lessons for the kids"},
	{Name: "Kids' purchases", Category: model.Want, Hint: "Children's requests and shopping"},
	{Name: "Dining out", Category: model.Want, Hint: "Restaurants and cafes"},
	{Name: "Entertainment & shopping", Category: model.Want, Hint: "General leisure and shopping"},
	{Name: "Charity", Category: model.Want, Hint: "Monthly charitable giving"},
	{Name: "Subscriptions", Category: model.Want, Hint: "Digital subscriptions and clubs"},
	{Name: "Personal allowance", Category: model.Want, Hint: "Your own monthly pocket money"},
	{Name: "Emergency fund", Category: model.Saving, Hint: "Set aside for emergencies"},
	{Name: "Holiday savings", Category: model.Saving, Hint: "Saving up for the next holiday"},
	{Name: "Education savings", Category: model.Saving, Hint: "Saving for the kids' education"},
	{Name: "Investments", Category: model.Saving, Hint: "Monthly investment contributions"},
}
