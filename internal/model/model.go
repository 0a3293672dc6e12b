package model

// All mengembalikan seluruh model untuk AutoMigrate, urut dari tabel induk.
func All() []interface{} {
	return []interface{}{
		&User{},
		&SatuanKegiatan{},
		&Kegiatan{},
		&IDSequence{},
		&Subkegiatan{},
		&JabatanMitra{},
		&Honorarium{},
		&AturanPeriode{},
		&Mitra{},
		&PengajuanMitra{},
		&Penugasan{},
		&KelompokPenugasan{},
		&Perencanaan{},
		&KelompokPerencanaan{},
		&MasterTemplateSpk{},
		&MasterTemplateSpkPasal{},
		&SpkSetting{},
		&LaporanForm{},
		&LaporanFormItem{},
	}
}
