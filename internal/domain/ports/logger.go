package ports

// Logger é a interface de logging estruturado usada pelo domínio.
// args são pares chave/valor, no estilo do slog.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
