package entity

// Branch is static reference data. The core never persists or mutates
// branches; the fixed set below is supplied at startup.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func DefaultBranches() []Branch {
	return []Branch{
		{ID: "main", Name: "Bosh Ofis", Location: "Toshkent shahri"},
		{ID: "and", Name: "Andijon Filiali", Location: "Andijon"},
		{ID: "bux", Name: "Buxoro Filiali", Location: "Buxoro"},
		{ID: "fer", Name: "Farg'ona Filiali", Location: "Farg'ona"},
		{ID: "jiz", Name: "Jizzax Filiali", Location: "Jizzax"},
		{ID: "nam", Name: "Namangan Filiali", Location: "Namangan"},
		{ID: "nav", Name: "Navoiy Filiali", Location: "Navoiy"},
		{ID: "qash", Name: "Qashqadaryo Filiali", Location: "Qarshi"},
		{ID: "qor", Name: "Qoraqalpog'iston Filiali", Location: "Nukus"},
		{ID: "sam", Name: "Samarqand Filiali", Location: "Samarqand"},
		{ID: "sir", Name: "Sirdaryo Filiali", Location: "Guliston"},
		{ID: "sur", Name: "Surxondaryo Filiali", Location: "Termiz"},
		{ID: "xor", Name: "Xorazm Filiali", Location: "Urganch"},
		{ID: "tosh_v", Name: "Toshkent Viloyat Filiali", Location: "Nurafshon"},
	}
}
