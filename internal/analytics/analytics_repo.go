package analytics

import (
	"context"

	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"

	"gorm.io/gorm"
)

// Grouping dimensions accepted by the statistics report.
const (
	GroupByCargo    = "cargo"
	GroupByOrgao    = "orgao"
	GroupByMes      = "mes"
	GroupByServidor = "servidor"
)

// groupExpressions whitelists the SQL expression per grouping dimension so
// the dimension string never reaches the query raw.
var groupExpressions = map[string]string{
	GroupByCargo:    "s.descr_cargo",
	GroupByOrgao:    "s.org_exercicio",
	GroupByMes:      "CAST(r.mes AS TEXT)",
	GroupByServidor: "CONCAT(s.nome, ' (ID: ', s.id_servidor, ')')",
}

func ValidGroupBy(dim string) bool {
	_, ok := groupExpressions[dim]
	return ok
}

type payStatsRow struct {
	Minima         float64
	Maxima         float64
	Media          float64
	TotalRegistros int64
}

type topPayRow struct {
	Nome       string
	DescrCargo string
	MediaAnual float64
}

type payByRoleRow struct {
	DescrCargo       string
	Quantidade       int64
	MediaRemuneracao float64
}

type absenceByServantRow struct {
	Nome              string
	DescrCargo        string
	TotalAfastamentos int64
	TotalDias         int64
}

type absenceByMonthRow struct {
	Mes        int
	Quantidade int64
	TotalDias  int64
}

type distributionRow struct {
	Categoria  string
	Quantidade int64
}

type monthlyPayRow struct {
	Mes        int
	Media      float64
	Quantidade int64
}

type executiveSummaryRow struct {
	ServidoresAtivos int64
	TotalRegistros   int64
	TotalRemuneracao float64
	MediaRemuneracao float64
	MenorRemuneracao float64
	MaiorRemuneracao float64
}

type groupStatsRow struct {
	Grupo            string
	ServidoresUnicos int64
	TotalRegistros   int64
	MediaRemuneracao float64
	MenorRemuneracao float64
	MaiorRemuneracao float64
	TotalRemuneracao float64
}

type detailRow struct {
	IDServidor       int64
	Nome             *string
	DescrCargo       *string
	OrgExercicio     *string
	Mes              int
	RemuneracaoFinal float64
	Ano              int
}

type correlationRow struct {
	RemuneracaoFinal  float64
	Mes               int
	TotalAfastamentos int64
}

type scatterRow struct {
	MediaRemuneracao float64
	TotalDias        int64
}

type Repository interface {
	CountServidores(ctx context.Context) (int64, error)
	CountServidoresAtivos(ctx context.Context, ano int) (int64, error)
	SomaRemuneracao(ctx context.Context, ano int) (float64, error)
	MediaRemuneracao(ctx context.Context, ano int) (float64, error)
	PayStats(ctx context.Context, ano int) (payStatsRow, error)
	TopRemuneracoes(ctx context.Context, ano, limit int) ([]topPayRow, error)
	RemuneracaoPorCargo(ctx context.Context, ano int) ([]payByRoleRow, error)
	TopCargosPorMedia(ctx context.Context, ano, minServidores, limit int) ([]payByRoleRow, error)
	CountAfastamentos(ctx context.Context, ano int) (int64, error)
	SomaDiasAfastamento(ctx context.Context, ano int) (int64, error)
	TopAfastamentos(ctx context.Context, ano, limit int) ([]absenceByServantRow, error)
	AfastamentosPorMes(ctx context.Context, ano int) ([]absenceByMonthRow, error)
	Distribuicao(ctx context.Context, dimensao string, limit int) ([]distributionRow, error)
	EvolucaoMensal(ctx context.Context, ano int) ([]monthlyPayRow, error)
	RemuneracaoVsAfastamentos(ctx context.Context, ano int) ([]scatterRow, error)
	ResumoExecutivo(ctx context.Context, ano int) (executiveSummaryRow, error)
	ValoresRemuneracao(ctx context.Context, ano int) ([]float64, error)
	AnalisePorGrupo(ctx context.Context, ano int, agruparPor string, limit int) ([]groupStatsRow, error)
	DadosDetalhados(ctx context.Context, ano, limit int) ([]detailRow, error)
	LinhasCorrelacao(ctx context.Context, ano, limit int) ([]correlationRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountServidores(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("servidores").Count(&total).Error
	return total, err
}

func (r *repository) CountServidoresAtivos(ctx context.Context, ano int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ?", ano).
		Distinct("id_servidor").
		Count(&total).Error
	return total, err
}

func (r *repository) SomaRemuneracao(ctx context.Context, ano int) (float64, error) {
	var soma float64
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ?", ano).
		Select("COALESCE(SUM(remuneracao_final), 0)").
		Scan(&soma).Error
	return soma, err
}

func (r *repository) MediaRemuneracao(ctx context.Context, ano int) (float64, error) {
	var media float64
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ?", ano).
		Select("COALESCE(AVG(remuneracao_final), 0)").
		Scan(&media).Error
	return media, err
}

func (r *repository) PayStats(ctx context.Context, ano int) (payStatsRow, error) {
	var row payStatsRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ?", ano).
		Select(`COALESCE(MIN(remuneracao_final), 0) AS minima,
			COALESCE(MAX(remuneracao_final), 0) AS maxima,
			COALESCE(AVG(remuneracao_final), 0) AS media,
			COUNT(id_remuneracao) AS total_registros`).
		Scan(&row).Error
	return row, err
}

func (r *repository) TopRemuneracoes(ctx context.Context, ano, limit int) ([]topPayRow, error) {
	var rows []topPayRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes r").
		Joins("JOIN servidores s ON s.id_servidor = r.id_servidor").
		Where("r.ano = ?", ano).
		Select("s.nome, s.descr_cargo, AVG(r.remuneracao_final) AS media_anual").
		Group("s.id_servidor, s.nome, s.descr_cargo").
		Order("media_anual DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RemuneracaoPorCargo(ctx context.Context, ano int) ([]payByRoleRow, error) {
	var rows []payByRoleRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes r").
		Joins("JOIN servidores s ON s.id_servidor = r.id_servidor").
		Where("r.ano = ?", ano).
		Select("s.descr_cargo, COUNT(s.id_servidor) AS quantidade, AVG(r.remuneracao_final) AS media_remuneracao").
		Group("s.descr_cargo").
		Order("media_remuneracao DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopCargosPorMedia(ctx context.Context, ano, minServidores, limit int) ([]payByRoleRow, error) {
	var rows []payByRoleRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes r").
		Joins("JOIN servidores s ON s.id_servidor = r.id_servidor").
		Where("r.ano = ?", ano).
		Select("s.descr_cargo, COUNT(s.id_servidor) AS quantidade, AVG(r.remuneracao_final) AS media_remuneracao").
		Group("s.descr_cargo").
		Having("COUNT(s.id_servidor) >= ?", minServidores).
		Order("media_remuneracao DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountAfastamentos(ctx context.Context, ano int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("afastamentos").
		Where("ano = ?", ano).
		Count(&total).Error
	return total, err
}

func (r *repository) SomaDiasAfastamento(ctx context.Context, ano int) (int64, error) {
	var soma int64
	err := r.db.WithContext(ctx).
		Table("afastamentos").
		Where("ano = ?", ano).
		Select("COALESCE(SUM(duracao_dias), 0)").
		Scan(&soma).Error
	return soma, err
}

func (r *repository) TopAfastamentos(ctx context.Context, ano, limit int) ([]absenceByServantRow, error) {
	var rows []absenceByServantRow
	err := r.db.WithContext(ctx).
		Table("afastamentos a").
		Joins("JOIN servidores s ON s.id_servidor = a.id_servidor").
		Where("a.ano = ?", ano).
		Select("s.nome, s.descr_cargo, COUNT(a.id_afastamento) AS total_afastamentos, SUM(a.duracao_dias) AS total_dias").
		Group("s.id_servidor, s.nome, s.descr_cargo").
		Order("total_dias DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AfastamentosPorMes(ctx context.Context, ano int) ([]absenceByMonthRow, error) {
	var rows []absenceByMonthRow
	err := r.db.WithContext(ctx).
		Table("afastamentos").
		Where("ano = ?", ano).
		Select("mes, COUNT(id_afastamento) AS quantidade, SUM(duracao_dias) AS total_dias").
		Group("mes").
		Order("mes").
		Scan(&rows).Error
	return rows, err
}

// Distribuicao counts servants grouped by one categorical column. limit <= 0
// means unlimited.
func (r *repository) Distribuicao(ctx context.Context, dimensao string, limit int) ([]distributionRow, error) {
	colunas := map[string]string{
		"org_superior":     "org_superior",
		"org_exercicio":    "org_exercicio",
		"regime":           "regime",
		"jornada_trabalho": "jornada_trabalho",
	}
	coluna, ok := colunas[dimensao]
	if !ok {
		return nil, apperror.ErrInvalidInput
	}

	q := r.db.WithContext(ctx).
		Table("servidores").
		Select(coluna + " AS categoria, COUNT(id_servidor) AS quantidade").
		Group(coluna).
		Order("quantidade DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []distributionRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) EvolucaoMensal(ctx context.Context, ano int) ([]monthlyPayRow, error) {
	var rows []monthlyPayRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ?", ano).
		Select("mes, AVG(remuneracao_final) AS media, COUNT(id_remuneracao) AS quantidade").
		Group("mes").
		Order("mes").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RemuneracaoVsAfastamentos(ctx context.Context, ano int) ([]scatterRow, error) {
	var rows []scatterRow
	err := r.db.WithContext(ctx).
		Table("servidores s").
		Joins("JOIN remuneracoes r ON r.id_servidor = s.id_servidor AND r.ano = ?", ano).
		Joins("LEFT JOIN afastamentos a ON a.id_servidor = s.id_servidor AND a.ano = ?", ano).
		Select("AVG(r.remuneracao_final) AS media_remuneracao, COALESCE(SUM(a.duracao_dias), 0) AS total_dias").
		Group("s.id_servidor").
		Having("AVG(r.remuneracao_final) > 0").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ResumoExecutivo(ctx context.Context, ano int) (executiveSummaryRow, error) {
	var row executiveSummaryRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ? AND remuneracao_final IS NOT NULL AND remuneracao_final > 0", ano).
		Select(`COUNT(DISTINCT id_servidor) AS servidores_ativos,
			COUNT(id_servidor) AS total_registros,
			COALESCE(SUM(remuneracao_final), 0) AS total_remuneracao,
			COALESCE(AVG(remuneracao_final), 0) AS media_remuneracao,
			COALESCE(MIN(remuneracao_final), 0) AS menor_remuneracao,
			COALESCE(MAX(remuneracao_final), 0) AS maior_remuneracao`).
		Scan(&row).Error
	return row, err
}

func (r *repository) ValoresRemuneracao(ctx context.Context, ano int) ([]float64, error) {
	var valores []float64
	err := r.db.WithContext(ctx).
		Table("remuneracoes").
		Where("ano = ? AND remuneracao_final IS NOT NULL AND remuneracao_final > 0", ano).
		Order("remuneracao_final").
		Pluck("remuneracao_final", &valores).Error
	return valores, err
}

func (r *repository) AnalisePorGrupo(ctx context.Context, ano int, agruparPor string, limit int) ([]groupStatsRow, error) {
	expr, ok := groupExpressions[agruparPor]
	if !ok {
		return nil, apperror.ErrInvalidInput
	}

	var rows []groupStatsRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes r").
		Joins("LEFT JOIN servidores s ON s.id_servidor = r.id_servidor").
		Where("r.ano = ? AND r.remuneracao_final IS NOT NULL AND r.remuneracao_final > 0", ano).
		Select(expr + ` AS grupo,
			COUNT(DISTINCT r.id_servidor) AS servidores_unicos,
			COUNT(r.id_servidor) AS total_registros,
			AVG(r.remuneracao_final) AS media_remuneracao,
			MIN(r.remuneracao_final) AS menor_remuneracao,
			MAX(r.remuneracao_final) AS maior_remuneracao,
			SUM(r.remuneracao_final) AS total_remuneracao`).
		Group(expr).
		Order("media_remuneracao DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DadosDetalhados(ctx context.Context, ano, limit int) ([]detailRow, error) {
	var rows []detailRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes r").
		Joins("LEFT JOIN servidores s ON s.id_servidor = r.id_servidor").
		Where("r.ano = ? AND r.remuneracao_final IS NOT NULL", ano).
		Select("r.id_servidor, s.nome, s.descr_cargo, s.org_exercicio, r.mes, r.remuneracao_final, r.ano").
		Order("r.remuneracao_final DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) LinhasCorrelacao(ctx context.Context, ano, limit int) ([]correlationRow, error) {
	var rows []correlationRow
	err := r.db.WithContext(ctx).
		Table("remuneracoes r").
		Joins("LEFT JOIN afastamentos a ON a.id_servidor = r.id_servidor AND a.ano = r.ano AND a.mes = r.mes").
		Where("r.ano = ? AND r.remuneracao_final IS NOT NULL", ano).
		Select("r.remuneracao_final, r.mes, COUNT(a.id_afastamento) AS total_afastamentos").
		Group("r.id_servidor, r.mes, r.remuneracao_final").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
