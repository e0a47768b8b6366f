package handler

import "net/http"

// KioskPage serve a tela pública do totem: três botões grandes, bloqueio de
// toques repetidos no cliente e confirmação transitória.
func KioskPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(kioskHTML))
	})
}

// AdminPage serve o painel administrativo protegido por senha.
func AdminPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(adminHTML))
	})
}

const kioskHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Avaliação de Satisfação</title>
  <style>
    * { box-sizing: border-box; margin: 0; }
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
           height: 100vh; display: flex; flex-direction: column; background: #f1f5f9; }
    header { text-align: center; padding: 32px 16px 16px; }
    header h1 { font-size: 2.2rem; color: #1e293b; }
    header p { color: #475569; margin-top: 8px; font-size: 1.1rem; }
    main { flex: 1; display: flex; flex-direction: column; gap: 16px;
           padding: 16px; max-width: 900px; margin: 0 auto; width: 100%; }
    button.level { flex: 1; min-height: 140px; border: none; border-radius: 24px;
                   color: #fff; font-size: 2rem; font-weight: 700; cursor: pointer;
                   box-shadow: 0 8px 20px rgba(15,23,42,.15); transition: transform .15s; }
    button.level:active { transform: scale(.98); }
    button.level:disabled { opacity: .5; cursor: not-allowed; }
    .muito { background: #10b981; }
    .satisfeito { background: #f59e0b; }
    .insatisfeito { background: #f43f5e; }
    .toast { position: fixed; top: 32px; left: 50%; transform: translateX(-50%);
             padding: 16px 32px; border-radius: 16px; color: #fff; font-size: 1.2rem;
             font-weight: 600; display: none; z-index: 10; }
    #thanks { background: #16a34a; }
    #blocked { background: #f97316; }
  </style>
</head>
<body>
  <div id="thanks" class="toast">Obrigado pelo seu feedback!</div>
  <div id="blocked" class="toast">Aguarde um momento antes de avaliar novamente</div>

  <header>
    <h1>Como avalia a sua experiência?</h1>
    <p>A sua opinião é muito importante para nós</p>
  </header>

  <main>
    <button class="level muito" onclick="sendFeedback('Muito Satisfeito')">Muito Satisfeito</button>
    <button class="level satisfeito" onclick="sendFeedback('Satisfeito')">Satisfeito</button>
    <button class="level insatisfeito" onclick="sendFeedback('Insatisfeito')">Insatisfeito</button>
  </main>

  <script>
    // Máquina de bloqueio: um toque a menos de 2s do último toque ACEITO entra
    // em Blocked por 2s; o primeiro toque é sempre aceito. O toast de
    // agradecimento (3s) roda em um timer independente.
    var lastClickTime = 0;

    function setBlocked(blocked) {
      document.getElementById('blocked').style.display = blocked ? 'block' : 'none';
      document.querySelectorAll('button.level').forEach(function (b) { b.disabled = blocked; });
    }

    function sendFeedback(level) {
      var now = Date.now();
      if (lastClickTime !== 0 && now - lastClickTime < 2000) {
        setBlocked(true);
        setTimeout(function () { setBlocked(false); }, 2000);
        return;
      }
      lastClickTime = now;

      fetch('/api/feedback', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ satisfaction_level: level })
      }).then(function (response) {
        if (response.ok) {
          var thanks = document.getElementById('thanks');
          thanks.style.display = 'block';
          setTimeout(function () { thanks.style.display = 'none'; }, 3000);
        }
      }).catch(function (error) {
        console.error('Erro ao enviar feedback:', error);
      });
    }
  </script>
</body>
</html>
`

const adminHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Dashboard de Satisfação</title>
  <style>
    * { box-sizing: border-box; margin: 0; }
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
           background: #f1f5f9; min-height: 100vh; padding: 24px; }
    h1 { color: #1e293b; }
    .hidden { display: none; }
    .card { background: #fff; border: 1px solid #e2e8f0; border-radius: 12px;
            padding: 20px; margin-bottom: 16px; }
    #login { max-width: 380px; margin: 10vh auto; }
    input, button { font-size: 1rem; padding: 10px 14px; border-radius: 8px; }
    input { border: 1px solid #cbd5e1; width: 100%; margin-bottom: 12px; }
    button { border: none; cursor: pointer; background: #059669; color: #fff; }
    button.outline { background: #fff; color: #1e293b; border: 1px solid #cbd5e1; }
    .error { color: #e11d48; margin-bottom: 12px; }
    .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; }
    .cards .card { margin: 0; }
    .big { font-size: 2rem; font-weight: 700; color: #1e293b; }
    .muted { color: #64748b; font-size: .9rem; }
    .bar-track { background: #e2e8f0; border-radius: 9999px; height: 12px; overflow: hidden; margin-top: 6px; }
    .bar { height: 100%; }
    .actions { display: flex; gap: 8px; flex-wrap: wrap; margin: 16px 0; align-items: end; }
    table { width: 100%; border-collapse: collapse; }
    th, td { text-align: left; padding: 10px 12px; border-bottom: 1px solid #e2e8f0; font-size: .95rem; }
    .pill { padding: 3px 12px; border-radius: 9999px; color: #fff; font-size: .8rem; }
    .empty { text-align: center; color: #64748b; padding: 40px 0; }
  </style>
</head>
<body>
  <div id="login" class="card">
    <h1>Admin Dashboard</h1>
    <p class="muted" style="margin:8px 0 16px">Digite a password para aceder</p>
    <form onsubmit="return doLogin(event)">
      <input id="password" type="password" placeholder="Digite a password" required>
      <p id="loginError" class="error hidden"></p>
      <button type="submit" style="width:100%">Entrar</button>
    </form>
  </div>

  <div id="dashboard" class="hidden">
    <h1>Dashboard de Satisfação</h1>
    <p class="muted" style="margin:4px 0 16px">Análise e estatísticas de feedback</p>

    <div class="actions">
      <div>
        <label class="muted" for="dateFilter">Filtrar por Data</label><br>
        <input id="dateFilter" type="date" style="width:auto;margin:4px 0 0" onchange="applyFilter(this.value)">
      </div>
      <button class="outline" onclick="applyFilter(new Date().toISOString().split('T')[0])">Hoje</button>
      <button class="outline" onclick="applyFilter('')">Limpar Filtro</button>
      <button class="outline" onclick="exportFile('csv')">Exportar CSV</button>
      <button class="outline" onclick="exportFile('txt')">Exportar TXT</button>
      <button onclick="window.open('/', '_blank')">Exibir Botões</button>
    </div>

    <div id="cards" class="cards"></div>
    <div class="card" style="margin-top:16px">
      <h3>Distribuição por Nível</h3>
      <div id="bars"></div>
    </div>
    <div class="card">
      <h3 id="historyTitle">Histórico de Feedbacks</h3>
      <table>
        <thead>
          <tr><th>ID</th><th>Nível de Satisfação</th><th>Data</th><th>Hora</th></tr>
        </thead>
        <tbody id="rows"></tbody>
      </table>
      <div id="tableNote" class="empty hidden"></div>
    </div>
  </div>

  <script>
    // Estado da sessão mantido localmente: flag de autenticação e data
    // selecionada. O servidor não emite token.
    var selectedDate = '';

    var levelColors = {
      'Muito Satisfeito': '#10b981',
      'Satisfeito': '#f59e0b',
      'Insatisfeito': '#f43f5e'
    };

    function doLogin(event) {
      event.preventDefault();
      var errorEl = document.getElementById('loginError');
      errorEl.classList.add('hidden');

      fetch('/api/admin/login', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ password: document.getElementById('password').value })
      }).then(function (response) {
        if (response.ok) {
          document.getElementById('login').classList.add('hidden');
          document.getElementById('dashboard').classList.remove('hidden');
          loadData();
        } else {
          errorEl.textContent = 'Password incorreta';
          errorEl.classList.remove('hidden');
        }
      }).catch(function () {
        errorEl.textContent = 'Erro ao fazer login';
        errorEl.classList.remove('hidden');
      });
      return false;
    }

    function applyFilter(date) {
      selectedDate = date;
      document.getElementById('dateFilter').value = date;
      loadData();
    }

    function exportFile(format) {
      var url = '/api/admin/export?format=' + format;
      if (selectedDate) url += '&date=' + selectedDate;
      window.open(url, '_blank');
    }

    function loadData() {
      var suffix = selectedDate ? '?date=' + selectedDate : '';
      Promise.all([
        fetch('/api/admin/stats' + suffix).then(function (r) { return r.json(); }),
        fetch('/api/feedback' + suffix).then(function (r) { return r.json(); })
      ]).then(function (results) {
        renderStats(results[0]);
        renderTable(results[1]);
      }).catch(function (error) {
        console.error('Erro ao carregar dados:', error);
      });
    }

    function renderStats(data) {
      var cards = '<div class="card"><p class="muted">Total de Avaliações</p>' +
        '<div class="big">' + data.total + '</div></div>';
      var bars = '';

      data.stats.forEach(function (stat) {
        var color = levelColors[stat.level] || '#64748b';
        cards += '<div class="card"><p class="muted">' + stat.level + '</p>' +
          '<div class="big">' + stat.count + '</div>' +
          '<p class="muted">' + stat.percentage + '% do total</p></div>';
        bars += '<p style="margin-top:12px">' + stat.level +
          ' <span class="muted">' + stat.count + ' (' + stat.percentage + '%)</span></p>' +
          '<div class="bar-track"><div class="bar" style="width:' + stat.percentage +
          '%;background:' + color + '"></div></div>';
      });

      document.getElementById('cards').innerHTML = cards;
      document.getElementById('bars').innerHTML = bars ||
        '<p class="empty">Nenhum feedback registado ainda</p>';
    }

    function renderTable(feedbacks) {
      document.getElementById('historyTitle').textContent =
        'Histórico de Feedbacks (' + feedbacks.length + ' registos)';

      var rows = '';
      feedbacks.slice(0, 50).forEach(function (feedback) {
        var date = new Date(feedback.created_at);
        var color = levelColors[feedback.satisfaction_level] || '#64748b';
        rows += '<tr><td>' + feedback.id + '</td>' +
          '<td><span class="pill" style="background:' + color + '">' +
          feedback.satisfaction_level + '</span></td>' +
          '<td>' + date.toLocaleDateString('pt-BR') + '</td>' +
          '<td>' + date.toLocaleTimeString('pt-BR') + '</td></tr>';
      });
      document.getElementById('rows').innerHTML = rows;

      var note = document.getElementById('tableNote');
      if (feedbacks.length === 0) {
        note.textContent = 'Nenhum feedback registado ainda';
        note.classList.remove('hidden');
      } else if (feedbacks.length > 50) {
        note.textContent = 'Mostrando 50 de ' + feedbacks.length + ' registos';
        note.classList.remove('hidden');
      } else {
        note.classList.add('hidden');
      }
    }
  </script>
</body>
</html>
`
