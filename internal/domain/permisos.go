package domain

// Permission codes granted through modulos. The seed command registers one
// modulo per code.
const (
	PermEstudiantesLectura   = "ESTUDIANTES_LECTURA"
	PermEstudiantesEscritura = "ESTUDIANTES_ESCRITURA"
	PermFichasLectura        = "FICHAS_LECTURA"
	PermFichasEscritura      = "FICHAS_ESCRITURA"
	PermFichasEstado         = "FICHAS_ESTADO"
	PermEntrevistasLectura   = "ENTREVISTAS_LECTURA"
	PermEntrevistasEscritura = "ENTREVISTAS_ESCRITURA"
	PermInformesLectura      = "INFORMES_LECTURA"
	PermInformesEscritura    = "INFORMES_ESCRITURA"
	PermUsuariosGestion      = "USUARIOS_GESTION"
)

// PermisoCodes lists every grantable code, used by seeding and role admin.
func PermisoCodes() []string {
	return []string{
		PermEstudiantesLectura, PermEstudiantesEscritura,
		PermFichasLectura, PermFichasEscritura, PermFichasEstado,
		PermEntrevistasLectura, PermEntrevistasEscritura,
		PermInformesLectura, PermInformesEscritura,
		PermUsuariosGestion,
	}
}
