package authz

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

const (
	ActRead   = "read"
	ActWrite  = "write"
	ActSubmit = "submit"
)

const (
	ObjUsers       = "users"
	ObjKegiatan    = "kegiatan"
	ObjSubkegiatan = "subkegiatan"
	ObjMitra       = "mitra"
	ObjPengajuan   = "pengajuan"
	ObjPenugasan   = "penugasan"
	ObjPerencanaan = "perencanaan"
	ObjHonorarium  = "honorarium"
	ObjJabatan     = "jabatan"
	ObjSatuan      = "satuan"
	ObjAturan      = "aturan"
	ObjLaporan     = "laporan"
	ObjTransaksi   = "transaksi"
	ObjSpk         = "spk"
	ObjDashboard   = "dashboard"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// DefaultPolicies memetakan setiap objek ke aksi yang diizinkan per role.
// Objek yang tidak tercantum untuk sebuah role berarti ditolak.
func DefaultPolicies() [][]string {
	policies := [][]string{
		{"admin", "*", "*"},
	}
	for _, obj := range []string{
		ObjKegiatan, ObjSubkegiatan, ObjJabatan, ObjSatuan, ObjHonorarium,
		ObjAturan, ObjLaporan, ObjPenugasan, ObjPerencanaan,
	} {
		policies = append(policies, []string{"user", obj, ActRead})
	}
	policies = append(policies, []string{"user", ObjPengajuan, ActSubmit})
	return policies
}

type Authorizer struct {
	enforcer *casbin.Enforcer
}

func NewAuthorizer(policies [][]string) (*Authorizer, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if len(policies) > 0 {
		if _, err := enforcer.AddPolicies(policies); err != nil {
			return nil, err
		}
	}
	return &Authorizer{enforcer: enforcer}, nil
}

func NewDefaultAuthorizer() (*Authorizer, error) {
	return NewAuthorizer(DefaultPolicies())
}

func (a *Authorizer) Authorize(role, object, action string) (bool, error) {
	return a.enforcer.Enforce(role, object, action)
}
